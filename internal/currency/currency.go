// Package currency parses operator-entered money amounts into fixed-point
// cents. Input is tolerant: an optional currency symbol or "MXN" marker,
// non-breaking spaces, and either comma-as-thousands ("1,234.56") or
// comma-as-decimal ("1.234,56") notation are all accepted.
package currency

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalid = errors.New("invalid currency format")

// ParseCents normalizes raw input and returns the amount in cents, rounded
// to 2 decimal places half-up. Blank input parses to (nil, nil): no value,
// not an error.
func ParseCents(raw string) (*int64, error) {
	cleaned := strings.NewReplacer(
		"MXN", "",
		"$", "",
		"\u00a0", "",
		" ", "",
	).Replace(raw)

	cleaned = normalizeSeparators(cleaned)

	if cleaned == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, ErrInvalid
	}

	// decimal.Round is half away from zero, i.e. half-up for amounts.
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	return &cents, nil
}

// normalizeSeparators rewrites the amount into dot-decimal form. When both
// separators appear, the rightmost one is the decimal separator.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// "1.234,56": dots group thousands, comma is the decimal point.
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			// "1,234.56": commas group thousands.
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		// Comma only: treat it as the decimal separator ("12,50").
		s = strings.ReplaceAll(s, ",", ".")
	}

	return s
}

// FormatCents renders cents as a plain "1234.56" style string for exports.
// Nil means no value and renders empty.
func FormatCents(cents *int64) string {
	if cents == nil {
		return ""
	}

	return decimal.NewFromInt(*cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
