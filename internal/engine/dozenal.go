package engine

import (
	"math"
	"strings"

	"github.com/zeebo/errs"
)

// ErrParse is returned for malformed dozenal digit strings.
var ErrParse = errs.Class("dozenal parse")

// dozenalDigits is the base-12 digit alphabet: 0-9, A (ten), B (eleven).
const dozenalDigits = "0123456789AB"

// maxFracDigits bounds the fractional expansion of ToDozenal.
const maxFracDigits = 8

// ToDozenal converts a decimal value to its base-12 string representation.
// The fractional part carries at most 8 digits and terminates early once
// the residual drops below 1e-10, so the conversion is lossy beyond 12^-8.
func ToDozenal(value float64) string {
	if value == 0 {
		return "0"
	}

	negative := value < 0
	magnitude := math.Abs(value)

	intPart := uint64(magnitude)
	fracPart := magnitude - float64(intPart)

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(intToDozenal(intPart))

	if frac := fracToDozenal(fracPart); frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}

// intToDozenal converts a non-negative integer by repeated division by 12.
func intToDozenal(value uint64) string {
	if value == 0 {
		return "0"
	}

	buf := make([]byte, 0, 16)
	for value > 0 {
		buf = append(buf, dozenalDigits[value%12])
		value /= 12
	}

	// Digits were emitted least significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// fracToDozenal converts a fraction in [0,1) by repeated multiplication by 12.
func fracToDozenal(value float64) string {
	if value == 0 {
		return ""
	}

	buf := make([]byte, 0, maxFracDigits)
	for i := 0; i < maxFracDigits; i++ {
		value *= 12
		digit := int(value)
		buf = append(buf, dozenalDigits[digit])
		value -= float64(digit)

		if value < 1e-10 {
			break
		}
	}
	return string(buf)
}

// FromDozenal parses a base-12 string (e.g. "1A.6B") back to a decimal
// value. Parsing is case-insensitive; any character outside the dozenal
// alphabet fails with ErrParse.
func FromDozenal(s string) (float64, error) {
	if s == "" {
		return 0, ErrParse.New("empty string")
	}

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intStr := parts[0]
	fracStr := ""
	if len(parts) == 2 {
		fracStr = parts[1]
	}

	result := 0.0
	for i := range intStr {
		// Walk least significant digit first
		digit, err := dozenalDigitValue(intStr[len(intStr)-1-i])
		if err != nil {
			return 0, err
		}
		result += float64(digit) * math.Pow(12, float64(i))
	}

	for i := range fracStr {
		digit, err := dozenalDigitValue(fracStr[i])
		if err != nil {
			return 0, err
		}
		result += float64(digit) * math.Pow(12, -float64(i+1))
	}

	if negative {
		return -result, nil
	}
	return result, nil
}

// dozenalDigitValue maps one dozenal digit to its numeric value.
func dozenalDigitValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c == 'A' || c == 'a':
		return 10, nil
	case c == 'B' || c == 'b':
		return 11, nil
	default:
		return 0, ErrParse.New("invalid dozenal digit %q", c)
	}
}
