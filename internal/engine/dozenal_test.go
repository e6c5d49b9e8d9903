package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDozenal(t *testing.T) {
	tcs := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0, "0"},
		{"one", 1, "1"},
		{"ten", 10, "A"},
		{"eleven", 11, "B"},
		{"twelve", 12, "10"},
		{"gross", 144, "100"},
		{"hundred", 100, "84"},
		{"half", 0.5, "0.6"},
		{"quarter", 0.25, "0.3"},
		{"mixed", 22.5, "1A.6"},
		{"negative", -1.5, "-1.6"},
		{"negative fraction", -0.5, "-0.6"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ToDozenal(tc.value))
		})
	}
}

func TestFromDozenal(t *testing.T) {
	tcs := []struct {
		name string
		s    string
		want float64
	}{
		{"zero", "0", 0},
		{"single digit", "7", 7},
		{"ten", "A", 10},
		{"lowercase ten", "a", 10},
		{"eleven", "B", 11},
		{"twelve", "10", 12},
		{"gross", "100", 144},
		{"mixed", "1A.6", 22.5},
		{"lowercase mixed", "1a.6", 22.5},
		{"negative", "-10", -12},
		{"bare fraction", ".6", 0.5},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromDozenal(tc.s)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestFromDozenalInvalid(t *testing.T) {
	tcs := []struct {
		name string
		s    string
	}{
		{"empty", ""},
		{"bad digit", "1G"},
		{"bad fraction digit", "1.C"},
		{"word", "xyz"},
		{"double dot", "1.2.3"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromDozenal(tc.s)
			require.Error(t, err)
			require.True(t, ErrParse.Has(err))
		})
	}
}

func TestDozenalRoundTrip(t *testing.T) {
	values := []float64{100.25, 99.99, 3.14159, 0.1, 1234.5678, 144, -47.33}

	// Fractional truncation at 8 dozenal digits
	bound := math.Pow(12, -8)

	for _, v := range values {
		got, err := FromDozenal(ToDozenal(v))
		require.NoError(t, err)
		require.InDelta(t, v, got, bound)
	}
}
