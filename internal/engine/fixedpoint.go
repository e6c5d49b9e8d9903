package engine

import (
	"math"

	"github.com/zeebo/errs"
)

// ErrRange is returned when a price cannot be represented in the
// accelerator's 48-bit fixed-point format.
var ErrRange = errs.Class("fixed-point range")

// Fixed-point wire format: signed 48-bit, 16 integer bits, 32 fractional bits.
const (
	fracBits = 32
	intBits  = 16
	rawMask  = (uint64(1) << (intBits + fracBits)) - 1
	signBit  = uint64(1) << (intBits + fracBits - 1)
	rawLimit = float64(uint64(1) << (intBits + fracBits - 1)) // 2^47, signed raw bound
)

// EncodePrice converts a price to the two-word register representation:
// raw = round(price * 2^32), hi carries the top 16 bits, lo the bottom 32.
// The range check runs on the rounded raw value: a price just under 2^15
// can round up onto the sign bit and must be rejected, not wrapped.
func EncodePrice(price float64) (hi, lo uint32, err error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, 0, ErrRange.New("price %v is not finite", price)
	}

	scaled := math.Round(price * float64(uint64(1)<<fracBits))
	if scaled >= rawLimit || scaled < -rawLimit {
		return 0, 0, ErrRange.New("price %v exceeds %v integer bits", price, intBits)
	}

	raw := int64(scaled)
	packed := uint64(raw) & rawMask

	hi = uint32(packed>>fracBits) & 0xFFFF
	lo = uint32(packed & 0xFFFFFFFF)
	return hi, lo, nil
}

// DecodePrice converts the two-word register representation back to a price.
// Bit 47 is the sign bit and is extended before scaling.
func DecodePrice(hi, lo uint32) float64 {
	packed := (uint64(hi&0xFFFF) << fracBits) | uint64(lo)

	raw := int64(packed)
	if packed&signBit != 0 {
		raw = int64(packed | ^rawMask)
	}

	return float64(raw) / float64(uint64(1)<<fracBits)
}
