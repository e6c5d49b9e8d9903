package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tcs := []struct {
		name  string
		price float64
	}{
		{"zero", 0},
		{"one", 1},
		{"typical equity price", 100.25},
		{"tight tick", 0.0001},
		{"negative", -1.5},
		{"negative price", -100.28},
		{"near upper bound", 32767.5},
		{"near lower bound", -32767.5},
		{"sub cent", 0.00390625},
	}

	quantum := 1.0 / float64(uint64(1)<<32)

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			hi, lo, err := EncodePrice(tc.price)
			require.NoError(t, err)
			require.LessOrEqual(t, hi, uint32(0xFFFF))

			got := DecodePrice(hi, lo)
			require.InDelta(t, tc.price, got, quantum)
		})
	}
}

func TestEncodeRange(t *testing.T) {
	tcs := []struct {
		name  string
		price float64
	}{
		{"over upper bound", 32768},
		{"well over", 1e6},
		{"under lower bound", -32769},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := EncodePrice(tc.price)
			require.Error(t, err)
			require.True(t, ErrRange.Has(err))
		})
	}
}

func TestEncodeBoundary(t *testing.T) {
	quantum := 1.0 / float64(uint64(1)<<32)

	t.Run("just under upper bound rounds onto sign bit", func(t *testing.T) {
		// The largest float below 2^15 rounds up to raw 2^47, which
		// would wrap to -32768; encode must reject it instead.
		price := math.Nextafter(32768, 0)
		_, _, err := EncodePrice(price)
		require.Error(t, err)
		require.True(t, ErrRange.Has(err))
	})

	t.Run("largest encodable price", func(t *testing.T) {
		price := 32768 - quantum // raw 2^47 - 1
		hi, lo, err := EncodePrice(price)
		require.NoError(t, err)
		require.Equal(t, price, DecodePrice(hi, lo))
	})

	t.Run("smallest encodable price", func(t *testing.T) {
		hi, lo, err := EncodePrice(-32768) // raw -2^47
		require.NoError(t, err)
		require.Equal(t, -32768.0, DecodePrice(hi, lo))
	})
}

func TestDecodeKnownWords(t *testing.T) {
	// hi=1 is raw 2^32, i.e. price 1.0
	require.Equal(t, 1.0, DecodePrice(1, 0))

	// half in the fractional word
	require.Equal(t, 0.5, DecodePrice(0, 0x80000000))

	// all ones is raw -1, the smallest negative increment
	require.Equal(t, -1.0/float64(uint64(1)<<32), DecodePrice(0xFFFF, 0xFFFFFFFF))

	// stray bits above the 16-bit high field are masked off
	require.Equal(t, 1.0, DecodePrice(0xABCD0001, 0))
}
