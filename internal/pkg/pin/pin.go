package pin

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

// Length of a check-in PIN in digits.
const Length = 4

var pinRegex = regexp.MustCompile(`^\d{4}$`)

type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate draws a uniform 4-digit PIN, leading zeros preserved.
func (g *Generator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// IsWellFormed reports whether s looks like a PIN at all. Comparison
// against the stored secret is still an exact string match.
func IsWellFormed(s string) bool {
	return pinRegex.MatchString(s)
}
