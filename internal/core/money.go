// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from user input,
// formatting them for display and classifying them into display tiers.
package core

import (
	"math"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency, or an unknown one, is configured.
const DefaultCurrency = money.USD

// Tier classifies an amount for display styling.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

var (
	lowCeiling    = decimal.NewFromInt(10)
	mediumCeiling = decimal.NewFromInt(100)

	minMinor = decimal.NewFromInt(math.MinInt64)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// ParseAmount converts a decimal string to an amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs,
// thousands separators and exponents are rejected, as is the empty string.
// Zero is accepted.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-1")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return decimal.Zero, ErrInvalidAmount
	}
	if parts[0] == "" && (len(parts) == 1 || parts[1] == "") {
		return decimal.Zero, ErrInvalidAmount
	}
	for _, p := range parts {
		for _, r := range p {
			if !unicode.IsDigit(r) {
				return decimal.Zero, ErrInvalidAmount
			}
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders the amount in the given ISO currency, e.g. "$4.50".
// Amounts are rounded half-up to the currency's minor unit.
func FormatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(strings.TrimSpace(currency)))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.LessThan(minMinor) || minor.GreaterThan(maxMinor) {
		return displayWide(minor, cur)
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// displayWide renders minor units that do not fit an int64 with the same
// layout go-money uses for Display.
func displayWide(minor decimal.Decimal, cur *money.Currency) string {
	digits := minor.Abs().StringFixed(0)
	if len(digits) <= cur.Fraction {
		digits = strings.Repeat("0", cur.Fraction-len(digits)+1) + digits
	}
	if cur.Thousand != "" {
		for i := len(digits) - cur.Fraction - 3; i > 0; i -= 3 {
			digits = digits[:i] + cur.Thousand + digits[i:]
		}
	}
	if cur.Fraction > 0 {
		digits = digits[:len(digits)-cur.Fraction] + cur.Decimal + digits[len(digits)-cur.Fraction:]
	}
	out := strings.Replace(cur.Template, "1", digits, 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		out = "-" + out
	}
	return out
}

// TierOf returns the display tier: below 10 is low, below 100 medium,
// anything else high.
func TierOf(amount decimal.Decimal) Tier {
	switch {
	case amount.LessThan(lowCeiling):
		return TierLow
	case amount.LessThan(mediumCeiling):
		return TierMedium
	default:
		return TierHigh
	}
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	default:
		return "high"
	}
}
