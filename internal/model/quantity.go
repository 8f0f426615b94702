package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// QuantityPrecision is the number of decimal places a Quantity keeps.
const QuantityPrecision = 3

// Quantity is a positive amount rounded to QuantityPrecision decimal places.
// The zero value is not a valid Quantity; use ParseQuantity or QuantityFromFloat.
type Quantity struct {
	value decimal.Decimal
}

// DefaultQuantity is the amount used when the input carries none.
var DefaultQuantity = Quantity{value: decimal.NewFromInt(1)}

// ParseQuantity parses a decimal ("1.5", "1,5") or simple fraction ("1/2")
// into a Quantity. Empty input yields 1.
//
// Rounding is half away from zero, so 1.2349 becomes 1.235 and 0.0005 becomes 0.001.
func ParseQuantity(input string) (Quantity, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return DefaultQuantity, nil
	}

	var value decimal.Decimal
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseDecimal(num)
		if err != nil {
			return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
		}
		d, err := parseDecimal(den)
		if err != nil {
			return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
		}
		if d.IsZero() {
			return Quantity{}, fmt.Errorf("%w: zero denominator in %q", ErrInvalidQuantity, input)
		}
		// Keep a few digits beyond the final precision so the rounding below decides.
		value = n.DivRound(d, QuantityPrecision+4)
	} else {
		v, err := parseDecimal(s)
		if err != nil {
			return Quantity{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, input)
		}
		value = v
	}

	return newQuantity(value, input)
}

// QuantityFromFloat builds a Quantity from a numeric amount.
func QuantityFromFloat(v float64) (Quantity, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidQuantity, v)
	}
	return newQuantity(decimal.NewFromFloat(v), fmt.Sprint(v))
}

func newQuantity(value decimal.Decimal, input string) (Quantity, error) {
	rounded := value.Round(QuantityPrecision)
	if !rounded.IsPositive() {
		return Quantity{}, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidQuantity, input)
	}
	return Quantity{value: rounded}, nil
}

// Float64 returns the normalized amount.
func (q Quantity) Float64() float64 {
	f, _ := q.value.Float64()
	return f
}

// Decimal returns the normalized amount as an exact decimal.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// String returns the canonical form, e.g. "2", "0.5", "1.235".
// The result parses back to an equal Quantity.
func (q Quantity) String() string {
	return q.value.String()
}

// Equal reports whether both quantities hold the same amount.
func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

// parseDecimal accepts a plain decimal with either '.' or ',' as separator.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty number")
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			return decimal.Decimal{}, fmt.Errorf("invalid number %q", s)
		}
	}
	return decimal.NewFromString(s)
}
