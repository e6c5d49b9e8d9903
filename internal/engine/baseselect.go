package engine

import (
	"math"

	"multibase-hft/internal/model"
)

// OptimalBase picks the number base expected to minimize computation cost
// for the given value. The value is reduced to integer cents and walked
// through the rules below; the order is significant — a power of two that
// is also divisible by 4 must resolve to Binary, not Dozenal.
func OptimalBase(value float64) model.BaseSystem {
	cents := int64(math.Floor(math.Abs(value) * 100))

	if cents == 0 {
		return model.BaseDecimal
	}

	// Power of two: bit shifts beat everything
	if cents&(cents-1) == 0 {
		return model.BaseBinary
	}

	// Divisibility by base-12 factors
	if cents%12 == 0 || cents%6 == 0 || cents%4 == 0 {
		return model.BaseDozenal
	}

	if cents%10 == 0 {
		return model.BaseDecimal
	}

	// Score remaining base-12 affinity
	score := 0
	for _, d := range [...]int64{2, 3, 4, 6} {
		if cents%d == 0 {
			score++
		}
	}
	if score >= 2 {
		return model.BaseDozenal
	}

	return model.BaseDecimal
}
