package bigdec

import "strings"

// This file contains helpers operating on coefficients, which are
// strings of ASCII digits with no sign and no decimal point.

// trimZeros removes leading zeros from a coefficient, always keeping
// at least one digit.
func trimZeros(coef string) string {
	t := strings.TrimLeft(coef, "0")
	if t == "" {
		return "0"
	}
	return t
}

// padZeros appends n trailing zeros to a coefficient.
func padZeros(coef string, n int) string {
	if n <= 0 {
		return coef
	}
	return coef + strings.Repeat("0", n)
}

// increment adds one unit in the last place of a coefficient.
// The result may be one digit longer than the input, e.g. "99" becomes "100".
func increment(coef string) string {
	buf := []byte(coef)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] < '9' {
			buf[i]++
			return string(buf)
		}
		buf[i] = '0'
	}
	return "1" + string(buf)
}

// allZeros reports whether all digits of coef starting at position pos
// are zero. It is vacuously true when pos is past the end.
func allZeros(coef string, pos int) bool {
	for ; pos < len(coef); pos++ {
		if coef[pos] != '0' {
			return false
		}
	}
	return true
}

// exactHalf reports whether the digits of coef starting at position pos
// are exactly 5 followed by zeros, that is, exactly half a unit in the
// place just before pos.
func exactHalf(coef string, pos int) bool {
	if pos >= len(coef) || coef[pos] != '5' {
		return false
	}
	return allZeros(coef, pos+1)
}

// cmpDigits numerically compares two coefficients of equal length.
func cmpDigits(x, y string) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
