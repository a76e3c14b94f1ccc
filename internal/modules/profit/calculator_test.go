package profit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceForClient(t *testing.T) {
	assert.Equal(t, 120.0, PriceForClient(100, 20))
	assert.Equal(t, 100.0, PriceForClient(100, 0))
	assert.Equal(t, 100.0, PriceForClient(80, 25))
	assert.Equal(t, 150.0, PriceForClient(100, 50))
}

func TestPriceForClient_RoundsToCentavos(t *testing.T) {
	// 33.33 * 1.15 = 38.3295 -> 38.33
	assert.Equal(t, 38.33, PriceForClient(33.33, 15))
	// 10.01 * 1.33 = 13.3133 -> 13.31
	assert.Equal(t, 13.31, PriceForClient(10.01, 33))
}

func TestProfitFor(t *testing.T) {
	assert.Equal(t, 20.0, ProfitFor(100, 20))
	assert.Equal(t, 0.0, ProfitFor(100, 0))
	assert.Equal(t, 20.0, ProfitFor(80, 25))
}
