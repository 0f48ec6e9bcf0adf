package bigdec

import (
	"fmt"
	"strings"
)

// RoundingMode determines how [Decimal.Rescale] resolves the digits it
// discards.
type RoundingMode uint8

const (
	// RoundDown rounds toward zero, truncating discarded digits.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero whenever any discarded digit is nonzero.
	RoundUp
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to nearest, ties toward zero.
	RoundHalfDown
	// RoundHalfEven rounds to nearest, ties to the even kept digit
	// (banker's rounding).
	RoundHalfEven
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// Round05Up rounds away from zero when the last kept digit is neither
	// 0 nor 5, and truncates otherwise.
	Round05Up
)

var roundingModeNames = [...]string{
	RoundDown:     "down",
	RoundUp:       "up",
	RoundHalfUp:   "half-up",
	RoundHalfDown: "half-down",
	RoundHalfEven: "half-even",
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
	Round05Up:     "05up",
}

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", m)
}

// ParseRoundingMode returns the rounding mode with the given name,
// matched case-insensitively against the [RoundingMode.String] forms.
func ParseRoundingMode(name string) (RoundingMode, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for m, n := range roundingModeNames {
		if s == n {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown rounding mode %q", name)
}

// signal is the decision of a rounding policy for a concrete value:
// either the kept digits gain one unit in the last place, or they are
// left as is, with the signal recording whether truncation lost digits.
type signal uint8

const (
	truncateExact signal = iota
	truncateInexact
	roundAway
)

// decide applies the rounding policy to a finite non-zero d of which the
// first keep coefficient digits are retained.
// It requires 0 <= keep < Prec.
func (m RoundingMode) decide(keep int, d Decimal) signal {
	coef := d.Coef()
	exact := allZeros(coef, keep)

	switch m {
	case RoundDown:
		if exact {
			return truncateExact
		}
		return truncateInexact
	case RoundUp:
		if exact {
			return truncateExact
		}
		return roundAway
	case RoundHalfUp:
		if coef[keep] >= '5' {
			return roundAway
		}
		if exact {
			return truncateExact
		}
		return truncateInexact
	case RoundHalfDown:
		if exactHalf(coef, keep) {
			return truncateInexact
		}
		return RoundHalfUp.decide(keep, d)
	case RoundHalfEven:
		if exactHalf(coef, keep) {
			if keep > 0 && (coef[keep-1]-'0')%2 != 0 {
				return roundAway
			}
			return truncateInexact
		}
		return RoundHalfUp.decide(keep, d)
	case RoundCeiling:
		switch {
		case exact:
			return truncateExact
		case d.sign == Negative:
			return truncateInexact
		}
		return roundAway
	case RoundFloor:
		switch {
		case exact:
			return truncateExact
		case d.sign == Negative:
			return roundAway
		}
		return truncateInexact
	case Round05Up:
		switch {
		case exact:
			return truncateExact
		case keep > 0 && coef[keep-1] != '0' && coef[keep-1] != '5':
			return roundAway
		}
		return truncateInexact
	}
	return truncateInexact
}

// Rescale returns d with its exponent changed to exp.
//
// Special values pass through unchanged, and a zero coefficient simply
// adopts the new exponent.
// Lowering the exponent pads the coefficient with zeros on the right and
// loses nothing; raising it discards trailing digits, and the rounding
// mode decides whether the kept digits are incremented.
// When every digit is discarded and less than one unit remains in the
// target's last place, the result is either zero or one unit, again per
// the rounding mode.
func (d Decimal) Rescale(exp int, mode RoundingMode) Decimal {
	if d.form != finite {
		return d
	}
	if d.IsZero() {
		return Decimal{form: finite, sign: d.sign, coef: "0", exp: exp}
	}

	coef := d.Coef()
	if d.exp >= exp {
		return newFinite(d.sign, padZeros(coef, d.exp-exp), exp)
	}

	keep := len(coef) + d.exp - exp
	if keep < 0 {
		// The whole value is below a tenth of a unit in the target's
		// last place; a single nonzero digit one place lower stands in
		// for it so the policy sees a first discarded digit of 1.
		d = Decimal{form: finite, sign: d.sign, coef: "1", exp: exp - 1}
		keep = 0
	}
	kept := "0"
	if keep > 0 {
		kept = coef[:keep]
	}
	if mode.decide(keep, d) == roundAway {
		kept = increment(kept)
	}
	return newFinite(d.sign, kept, exp)
}
