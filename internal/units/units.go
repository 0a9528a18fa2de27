// Package units converts between human decimal strings and integer base units.
package units

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ErrBadDecimal is returned when a string is not a plain decimal number.
var ErrBadDecimal = errors.New("not a decimal number")

var ten = big.NewInt(10)

// Pow10 returns 10^n as a new big.Int.
func Pow10(n uint8) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// ParseUnits converts a decimal string such as "1.5" into base units scaled
// by 10^decimals. Extra fraction digits are rounded half-up at the last kept
// digit. Only an optional leading '-', digits and a single '.' are accepted.
func ParseUnits(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, errors.Wrapf(ErrBadDecimal, "%q", s)
	}
	if !allDigits(whole) || !allDigits(frac) {
		return nil, errors.Wrapf(ErrBadDecimal, "%q", s)
	}

	roundUp := false
	if len(frac) > int(decimals) {
		roundUp = frac[decimals] >= '5'
		frac = frac[:decimals]
	}
	frac += strings.Repeat("0", int(decimals)-len(frac))

	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		digits = "0"
	}
	out, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.Wrapf(ErrBadDecimal, "%q", s)
	}
	if roundUp {
		out.Add(out, big.NewInt(1))
	}
	if neg {
		out.Neg(out)
	}
	return out, nil
}

// FormatUnits renders base units as a decimal string with trailing fraction
// zeros removed, e.g. 1500000000000000000 with 18 decimals is "1.5".
func FormatUnits(v *big.Int, decimals uint8) string {
	s := FormatFixed(v, decimals, int(decimals))
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatFixed renders base units with exactly places fraction digits. Digits
// beyond places are truncated, missing ones are padded with zeros.
func FormatFixed(v *big.Int, decimals uint8, places int) string {
	if v == nil {
		v = new(big.Int)
	}

	abs := new(big.Int).Abs(v)
	whole, rem := new(big.Int).QuoRem(abs, Pow10(decimals), new(big.Int))

	var b strings.Builder
	if v.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(whole.String())

	if places <= 0 {
		return b.String()
	}

	var frac string
	if decimals > 0 {
		frac = rem.String()
		frac = strings.Repeat("0", int(decimals)-len(frac)) + frac
	}
	if len(frac) > places {
		frac = frac[:places]
	}
	frac += strings.Repeat("0", places-len(frac))

	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
