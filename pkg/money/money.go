// Package money parses and renders monetary amounts.
//
// Amounts are decimal.Decimal values with two fractional digits.
// Invariants:
//   - Parsing is locale-invariant: '.' is the decimal point and ',' only
//     groups thousands.
//   - Only plain notation is accepted: an optional sign, digits with optional
//     thousands commas and an optional fraction. Exponents are rejected.
//   - Magnitudes above MaxAmount are rejected.
//   - Parsed amounts are rounded half to even to Scale places.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for amounts.
const Scale = 2

// Symbol prefixes every formatted amount.
const Symbol = "$"

// maxDigits bounds the digits Parse will read. It is well above what
// MaxAmount needs and keeps parsing cheap for pasted garbage.
const maxDigits = 64

// MaxAmount is the largest magnitude Parse accepts (2^96 - 1).
var MaxAmount = decimal.RequireFromString("79228162514264337593543950335")

var plainNumber = regexp.MustCompile(`^[+-]?(?:[0-9][0-9,]*)?(?:\.[0-9]*)?$`)

// Parse reads a locale-invariant decimal string and rounds it to Scale places.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidAmount)
	}
	if !plainNumber.MatchString(s) || !strings.ContainsAny(s, "0123456789") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	s = strings.ReplaceAll(s, ",", "")
	if countDigits(s) > maxDigits {
		return decimal.Zero, fmt.Errorf("%w: too many digits", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, raw)
	}
	return d.RoundBank(Scale), nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ParsePositive is Parse restricted to amounts greater than zero.
func ParsePositive(raw string) (decimal.Decimal, error) {
	d, err := Parse(raw)
	if err != nil {
		return d, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrNotPositive
	}
	return d, nil
}

// ParseNonNegative is Parse restricted to amounts of zero or more.
func ParseNonNegative(raw string) (decimal.Decimal, error) {
	d, err := Parse(raw)
	if err != nil {
		return d, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// Format renders an amount as "$ 1,234.56". Negative amounts keep their
// sign after the symbol: "$ -20,000.00".
func Format(d decimal.Decimal) string {
	return Symbol + " " + Group(d)
}

// Group renders an amount with thousands separators and Scale decimals.
func Group(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(Scale)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(Scale).IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
