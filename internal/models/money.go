package models

import (
	"fmt"
	"math"
	"strconv"
)

// Money is a fixed-point currency amount stored in paise (1/100 of a rupee).
// It marshals to and from JSON numbers so the API keeps the plain numeric
// fields clients expect, while all arithmetic stays in integers.
type Money int64

// MoneyFromFloat converts a decimal amount to Money with half-up rounding.
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// Float returns the decimal value for display and JSON encoding.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// Sub returns m - other clamped at zero.
func (m Money) Sub(other Money) Money {
	if other >= m {
		return 0
	}
	return m - other
}

func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Float(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid money value %q", s)
	}
	*m = MoneyFromFloat(v)
	return nil
}
