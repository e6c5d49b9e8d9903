package engine

import "math"

// KellyQuantity sizes a position with the Kelly criterion at fixed odds
// b=2, halved for safety. confidencePct is a 0-100 win-probability score.
// The result is floored at zero; a non-positive entry price sizes to zero.
func KellyQuantity(entryPrice, riskLimit, confidencePct, volatility float64) int {
	p := confidencePct / 100.0
	q := 1 - p
	b := 2.0

	kellyFraction := math.Max(0, (p*b-q)/b)

	// Half-Kelly
	positionValue := riskLimit * kellyFraction * 0.5

	if entryPrice <= 0 {
		return 0
	}

	quantity := int(positionValue / entryPrice)
	if quantity < 0 {
		return 0
	}
	return quantity
}

// EstimateSlippage models execution slippage as a quarter spread that
// grows with order size relative to depth, capped at one full spread.
// Zero depth degrades to half the spread.
func EstimateSlippage(quantity int, spread float64, marketDepth int) float64 {
	if marketDepth == 0 {
		return spread * 0.5
	}

	depthRatio := float64(quantity) / float64(marketDepth)
	baseSlippage := spread * 0.25

	slippage := baseSlippage * (1 + math.Pow(depthRatio, 1.5))

	return math.Min(slippage, spread)
}
