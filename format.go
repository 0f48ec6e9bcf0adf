package bigdec

import (
	"strconv"
	"strings"
)

// String implements the [fmt.Stringer] interface and returns the
// canonical representation of d.
// Finite values use plain notation when the exponent is at most zero and
// the most significant digit is within six places of the decimal point,
// and scientific notation with a capital exponent letter otherwise:
//
//	123.456
//	1.5E+3
//	5E-7
//	-Infinity
//	NaN
//
// [Parse] accepts every string produced here, and the round trip
// preserves the value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.Text(true, false)
}

// EngString is like [Decimal.String], but uses engineering notation when
// an exponent is required, keeping it a multiple of three.
func (d Decimal) EngString() string {
	return d.Text(true, true)
}

// Text renders d with explicit display preferences: capitals selects the
// case of the exponent letter, and engineering keeps a rendered exponent
// a multiple of three.
func (d Decimal) Text(capitals, engineering bool) string {
	switch d.form {
	case infinite:
		return d.sign.String() + "Infinity"
	case notANumber:
		return "NaN"
	}

	coef := d.Coef()
	left := d.exp + len(coef) // digits to the left of the decimal point

	// Decimal point placement within the coefficient.
	var dot int
	switch {
	case d.exp <= 0 && left > -6:
		dot = left // plain notation
	case !engineering:
		dot = 1
	case coef == "0":
		dot = emod(left+1, 3) - 1
	default:
		dot = emod(left-1, 3) + 1
	}

	var b strings.Builder
	b.WriteString(d.sign.String())
	switch {
	case dot <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -dot))
		b.WriteString(coef)
	case dot >= len(coef):
		b.WriteString(coef)
		b.WriteString(strings.Repeat("0", dot-len(coef)))
	default:
		b.WriteString(coef[:dot])
		b.WriteByte('.')
		b.WriteString(coef[dot:])
	}

	if exp := left - dot; exp != 0 {
		if capitals {
			b.WriteByte('E')
		} else {
			b.WriteByte('e')
		}
		if exp < 0 {
			b.WriteByte('-')
			exp = -exp
		} else {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(exp))
	}
	return b.String()
}

// emod is the mathematical modulus, non-negative for any x.
func emod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
