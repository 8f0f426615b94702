package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// defaultFractionDigits is used for currency codes missing from ISO 4217 data.
const defaultFractionDigits = 2

// Money is an integer count of minor units (cents) in a single currency.
type Money struct {
	currency    string
	amountMinor int64
}

// MoneyFromMajor parses a human-readable amount such as "12.34", "12,34" or
// "1.234,56". When both separators appear the rightmost one is the decimal
// separator and the other one groups thousands.
func MoneyFromMajor(value string, currencyCode string) (Money, error) {
	normalized, ok := normalizeMajor(value)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoneyAmount, value)
	}
	major, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoneyAmount, value)
	}
	return fromMajorDecimal(major, currencyCode), nil
}

// MoneyFromMajorFloat converts a numeric major amount, rounding to the
// currency's minor unit.
func MoneyFromMajorFloat(value float64, currencyCode string) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidMoneyAmount, value)
	}
	return fromMajorDecimal(decimal.NewFromFloat(value), currencyCode), nil
}

// MoneyFromMinor builds Money from an integer minor amount.
func MoneyFromMinor(amountMinor int64, currencyCode string) Money {
	return Money{amountMinor: amountMinor, currency: normalizeCurrency(currencyCode)}
}

// MoneyFromMinorFloat builds Money from a minor amount that arrived as a
// floating-point number, rejecting fractional minor units.
func MoneyFromMinorFloat(amountMinor float64, currencyCode string) (Money, error) {
	if math.IsNaN(amountMinor) || math.IsInf(amountMinor, 0) || amountMinor != math.Trunc(amountMinor) {
		return Money{}, fmt.Errorf("%w: minor amount %v is not an integer", ErrInvalidMoneyAmount, amountMinor)
	}
	if amountMinor > math.MaxInt64 || amountMinor < math.MinInt64 {
		return Money{}, fmt.Errorf("%w: minor amount %v out of range", ErrInvalidMoneyAmount, amountMinor)
	}
	return MoneyFromMinor(int64(amountMinor), currencyCode), nil
}

func fromMajorDecimal(major decimal.Decimal, currencyCode string) Money {
	code := normalizeCurrency(currencyCode)
	minor := major.Shift(int32(fractionDigits(code))).Round(0)
	return Money{amountMinor: minor.IntPart(), currency: code}
}

// Add returns the sum of m and other. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amountMinor: m.amountMinor + other.amountMinor, currency: m.currency}, nil
}

// Sub returns m minus other. Both must share a currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amountMinor: m.amountMinor - other.amountMinor, currency: m.currency}, nil
}

// ToMinor returns the amount in minor units.
func (m Money) ToMinor() int64 {
	return m.amountMinor
}

// Currency returns the ISO 4217 code.
func (m Money) Currency() string {
	return m.currency
}

// FractionDigits returns the number of minor-unit digits of the currency.
func (m Money) FractionDigits() int {
	return fractionDigits(m.currency)
}

// ToMajorNumber returns the amount in major units.
func (m Money) ToMajorNumber() float64 {
	f, _ := m.majorDecimal().Float64()
	return f
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amountMinor == 0
}

// Format renders the amount for display in locale, e.g. "R$ 1.234,50" for
// pt-BR or "$1,234.50" for en-US.
func (m Money) Format(locale string) string {
	tag := language.Make(locale)
	p := message.NewPrinter(tag)

	digits := m.FractionDigits()
	major, _ := m.majorDecimal().Float64()
	amount := p.Sprint(number.Decimal(major, number.Scale(digits)))

	symbol := m.currency
	if unit, err := currency.ParseISO(m.currency); err == nil {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	if base, _ := tag.Base(); base.String() == "pt" {
		return symbol + " " + amount
	}
	return symbol + amount
}

// String renders the amount with the currency code, e.g. "12.34 BRL".
func (m Money) String() string {
	return m.majorDecimal().StringFixed(int32(m.FractionDigits())) + " " + m.currency
}

func (m Money) majorDecimal() decimal.Decimal {
	return decimal.New(m.amountMinor, -int32(m.FractionDigits()))
}

func fractionDigits(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return defaultFractionDigits
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// normalizeMajor rewrites a localized amount into decimal.NewFromString form.
func normalizeMajor(value string) (string, bool) {
	s := strings.TrimSpace(value)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	if s == "" {
		return "", false
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot >= 0 && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return "", false
		}
		s = strings.Replace(s, ",", ".", 1)
	}

	for i, r := range s {
		if r >= '0' && r <= '9' || r == '.' {
			continue
		}
		if (r == '-' || r == '+') && i == 0 {
			continue
		}
		return "", false
	}
	return s, true
}
