package pin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FourDigits(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 200; i++ {
		p, err := g.Generate()
		require.NoError(t, err)
		assert.Len(t, p, 4)
		assert.True(t, IsWellFormed(p), "pin %q must be 4 numeric digits", p)
	}
}

func TestGenerate_IndependentDraws(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		p, err := g.Generate()
		require.NoError(t, err)
		seen[p] = true
	}
	// 500 draws from a 10000 value space should not collapse to a handful.
	assert.Greater(t, len(seen), 300)
}

func TestIsWellFormed(t *testing.T) {
	assert.True(t, IsWellFormed("0000"))
	assert.True(t, IsWellFormed("4821"))
	assert.False(t, IsWellFormed("482"))
	assert.False(t, IsWellFormed("48211"))
	assert.False(t, IsWellFormed("48a1"))
	assert.False(t, IsWellFormed(""))
}
