package profit

import "math"

// PriceForClient derives the client-facing price from the provider's base
// price and the platform margin percent, rounded to centavos.
func PriceForClient(basePrice, marginPercent float64) float64 {
	return round2(basePrice * (1 + marginPercent/100))
}

// ProfitFor is the platform's cut of a single booking.
func ProfitFor(basePrice, marginPercent float64) float64 {
	return round2(PriceForClient(basePrice, marginPercent) - basePrice)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
