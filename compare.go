package bigdec

import "fmt"

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Zeros compare equal regardless of sign and exponent, and so do finite
// values with different representations of the same number, such as 1e2
// and 100.
//
// Comparison has no defined result when either operand is NaN;
// Cmp then returns an error wrapping [ErrUndefinedComparison] rather than
// picking an implicit ordering.
func (d Decimal) Cmp(e Decimal) (int, error) {
	if d.form == notANumber || e.form == notANumber {
		return 0, fmt.Errorf("comparing %s and %s: %w", d, e, ErrUndefinedComparison)
	}

	// Special case: infinities
	switch {
	case d.form == infinite && e.form == infinite:
		switch {
		case d.sign == e.sign:
			return 0, nil
		case d.sign == Negative:
			return -1, nil
		}
		return 1, nil
	case d.form == infinite:
		if d.sign == Negative {
			return -1, nil
		}
		return 1, nil
	case e.form == infinite:
		if e.sign == Negative {
			return 1, nil
		}
		return -1, nil
	}

	// Special case: zeros
	switch {
	case d.IsZero() && e.IsZero():
		return 0, nil
	case d.IsZero():
		return -e.sign.Int(), nil
	case e.IsZero():
		return d.sign.Int(), nil
	}

	// Special case: different signs
	if d.sign != e.sign {
		return d.sign.Int(), nil
	}

	// General case: same sign, compare magnitudes
	r := cmpMagnitude(d, e)
	if d.sign == Negative {
		r = -r
	}
	return r, nil
}

// cmpMagnitude compares the absolute values of two non-zero finite
// decimals.
// The adjusted exponents decide unless they tie, in which case the
// coefficients are right-padded to a common scale and compared digit by
// digit.
func cmpMagnitude(d, e Decimal) int {
	switch da, ea := d.adjExp(), e.adjExp(); {
	case da > ea:
		return 1
	case da < ea:
		return -1
	}
	dcoef, ecoef := d.Coef(), e.Coef()
	switch {
	case len(dcoef) < len(ecoef):
		dcoef = padZeros(dcoef, len(ecoef)-len(dcoef))
	case len(ecoef) < len(dcoef):
		ecoef = padZeros(ecoef, len(dcoef)-len(ecoef))
	}
	return cmpDigits(dcoef, ecoef)
}

// Equal returns true if d and e are numerically equal.
// Like [Decimal.Cmp], it returns an error when either operand is NaN.
func (d Decimal) Equal(e Decimal) (bool, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return r == 0, nil
}

// LessThan returns true if d < e.
// Like [Decimal.Cmp], it returns an error when either operand is NaN.
func (d Decimal) LessThan(e Decimal) (bool, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return r < 0, nil
}

// LessThanOrEqual returns true if d <= e.
// Like [Decimal.Cmp], it returns an error when either operand is NaN.
func (d Decimal) LessThanOrEqual(e Decimal) (bool, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return r <= 0, nil
}

// GreaterThan returns true if d > e.
// Like [Decimal.Cmp], it returns an error when either operand is NaN.
func (d Decimal) GreaterThan(e Decimal) (bool, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return r > 0, nil
}

// GreaterThanOrEqual returns true if d >= e.
// Like [Decimal.Cmp], it returns an error when either operand is NaN.
func (d Decimal) GreaterThanOrEqual(e Decimal) (bool, error) {
	r, err := d.Cmp(e)
	if err != nil {
		return false, err
	}
	return r >= 0, nil
}
