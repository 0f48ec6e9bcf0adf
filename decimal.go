package bigdec

import (
	"errors"
	"math"
	"strconv"
)

// Decimal type is a representation of an arbitrary-precision decimal
// floating-point number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is one of three forms:
//
//   - Finite: a [Sign], a coefficient, and an exponent.
//     The coefficient is a string of decimal digits and the represented
//     value is sign * coefficient * 10^exponent.
//     The coefficient carries no leading zeros, except for the canonical
//     zero coefficient "0".
//   - Infinity: a [Sign] only.
//   - NaN: no sign, no digits.
//
// The same numeric value can have multiple finite representations.
// For example, 1e2 and 100 have the same value, but the former has
// coefficient "1" and exponent 2, whereas the latter has coefficient "100"
// and exponent 0.
// [Decimal.Cmp] and the relational methods compare values, not
// representations.
//
// Decimals are immutable; every method returns a new decimal and never
// modifies its receiver.
type Decimal struct {
	form form
	sign Sign
	coef string
	exp  int
}

// form distinguishes the three kinds of decimals.
// Exhaustive switches over form keep the special values out of code paths
// that expect digit strings.
type form uint8

const (
	finite form = iota
	infinite
	notANumber
)

var (
	// ErrInvalidLiteral is returned by [Parse] when no literal shape
	// matches the normalized input.
	ErrInvalidLiteral = errors.New("invalid decimal literal")

	// ErrUndefinedComparison is returned by [Decimal.Cmp] and the
	// relational methods when either operand is NaN.
	ErrUndefinedComparison = errors.New("comparison with NaN is undefined")
)

// newFinite returns a finite decimal with a canonicalized coefficient.
func newFinite(sign Sign, coef string, exp int) Decimal {
	return Decimal{form: finite, sign: sign, coef: trimZeros(coef), exp: exp}
}

// zero is the canonical zero, equal in every way to the Decimal zero value.
var zero = Decimal{}

// Inf returns an infinity with the given sign.
func Inf(sign Sign) Decimal {
	return Decimal{form: infinite, sign: sign}
}

// NaN returns a not-a-number decimal.
func NaN() Decimal {
	return Decimal{form: notANumber}
}

// NewFromInt64 converts an integer to a (finite) decimal with exponent 0.
func NewFromInt64(i int64) Decimal {
	sign := Positive
	u := uint64(i)
	if i < 0 {
		sign = Negative
		u = -u
	}
	return Decimal{form: finite, sign: sign, coef: strconv.FormatUint(u, 10)}
}

// NewFromFloat64 converts a float to a decimal.
// IEEE NaN and infinities map to the corresponding special decimals, and
// both float zeros map to the canonical zero.
// For other inputs the result carries the digits of the shortest decimal
// string that round-trips through float64, so
// NewFromFloat64(0.1) is exactly 0.1, not the underlying binary fraction.
func NewFromFloat64(f float64) Decimal {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 1):
		return Inf(Positive)
	case math.IsInf(f, -1):
		return Inf(Negative)
	case f == 0:
		return zero
	}
	return MustParse(strconv.FormatFloat(f, 'f', -1, 64))
}

// Sign returns the sign of d.
// The sign of NaN is meaningless and always [Positive].
func (d Decimal) Sign() Sign {
	return d.sign
}

// Coef returns the coefficient of a finite d as a digit string,
// or "" for the special values.
func (d Decimal) Coef() string {
	if d.form != finite {
		return ""
	}
	if d.coef == "" {
		return "0"
	}
	return d.coef
}

// Exp returns the exponent of a finite d, or 0 for the special values.
func (d Decimal) Exp() int {
	return d.exp
}

// Prec returns the number of digits in the coefficient.
func (d Decimal) Prec() int {
	return len(d.Coef())
}

// adjExp returns the adjusted exponent of a finite d, which is the
// position of its most significant digit relative to the decimal point.
func (d Decimal) adjExp() int {
	return d.exp + d.Prec() - 1
}

// IsFinite returns true if d is neither an infinity nor NaN.
func (d Decimal) IsFinite() bool {
	return d.form == finite
}

// IsInf returns true if d is an infinity of either sign.
func (d Decimal) IsInf() bool {
	return d.form == infinite
}

// IsNaN returns true if d is not a number.
func (d Decimal) IsNaN() bool {
	return d.form == notANumber
}

// IsZero returns true if d is finite with a zero coefficient.
// Both positive and negative zeros qualify.
func (d Decimal) IsZero() bool {
	return d.form == finite && allZeros(d.coef, 0)
}

// Neg returns d with the opposite sign.
// NaN is returned unchanged.
func (d Decimal) Neg() Decimal {
	if d.form == notANumber {
		return d
	}
	d.sign = d.sign.Neg()
	return d
}

// Abs returns d with a positive sign.
// NaN is returned unchanged.
func (d Decimal) Abs() Decimal {
	if d.form == notANumber {
		return d
	}
	d.sign = Positive
	return d
}

// CopySign returns d with the same sign as e.
// If e is zero or either value is NaN, d is returned unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	if d.form == notANumber || e.form == notANumber || e.IsZero() {
		return d
	}
	d.sign = e.sign
	return d
}

// Min returns the smaller of d and e.
// Min panics if either value is NaN.
func (d Decimal) Min(e Decimal) Decimal {
	if d.MustCmp(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger of d and e.
// Max panics if either value is NaN.
func (d Decimal) Max(e Decimal) Decimal {
	if d.MustCmp(e) >= 0 {
		return d
	}
	return e
}

// Int64 returns the integer value of d and whether the conversion
// was exact.
// The conversion fails if d is not finite, has a fractional part, or
// does not fit into int64.
func (d Decimal) Int64() (int64, bool) {
	if d.form != finite {
		return 0, false
	}
	w := d.Rescale(0, RoundDown)
	if c, _ := d.Cmp(w); c != 0 {
		return 0, false
	}
	i, err := strconv.ParseInt(w.sign.String()+w.Coef(), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float64 returns the nearest float64 for d and whether the conversion
// was in range.
// Infinities convert to the IEEE infinities and NaN converts to the
// IEEE NaN, both exactly.
func (d Decimal) Float64() (float64, bool) {
	switch d.form {
	case infinite:
		return math.Inf(d.sign.Int()), true
	case notANumber:
		return math.NaN(), true
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return f, false
	}
	return f, true
}
