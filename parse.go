package bigdec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The literal grammar is five mutually exclusive shapes, tried in order
// against the whole normalized input. Partial matches are rejected by
// anchoring every shape at both ends.
var (
	wholeShape = regexp.MustCompile(`^([+-]?)([0-9]+)\.?$`)
	fracShape  = regexp.MustCompile(`^([+-]?)([0-9]*)\.([0-9]+)$`)
	expShape   = regexp.MustCompile(`^([+-]?)([0-9]*)(?:\.([0-9]+))?[eE]([+-]?[0-9]+)$`)
	infShape   = regexp.MustCompile(`(?i)^([+-]?)inf(?:inity)?$`)
	nanShape   = regexp.MustCompile(`(?i)^nan$`)
)

// Parse converts a string to a decimal.
// The input must be in one of the following forms:
//
//	123
//	123.
//	-12.375
//	.5
//	1.5e3
//	1E-2
//	-Infinity
//	NaN
//
// Surrounding whitespace is trimmed, underscores may be used anywhere as
// digit-group separators, and leading zeros are ignored.
// The sign, the exponent letter, and the special values are
// case-insensitive.
//
// Parse returns an error wrapping [ErrInvalidLiteral] if no form matches.
func Parse(text string) (Decimal, error) {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "_", "")
	t := strings.TrimLeft(s, "0")
	if t == "" {
		if s != "" {
			// The digits of the input were all zeros.
			return zero, nil
		}
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidLiteral)
	}
	if c := t[0]; len(t) != len(s) && (c < '0' || c > '9') {
		// Keep one zero when the stripped run was all zeros, as in 0E+2
		// and "0.".
		t = "0" + t
	}
	s = t

	if m := wholeShape.FindStringSubmatch(s); m != nil {
		return newFinite(parseSign(m[1]), m[2], 0), nil
	}
	if m := fracShape.FindStringSubmatch(s); m != nil {
		return newFinite(parseSign(m[1]), m[2]+m[3], -len(m[3])), nil
	}
	if m := expShape.FindStringSubmatch(s); m != nil {
		if m[2] == "" && m[3] == "" {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidLiteral)
		}
		exp, err := strconv.Atoi(m[4])
		if err != nil {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidLiteral)
		}
		return newFinite(parseSign(m[1]), m[2]+m[3], exp-len(m[3])), nil
	}
	if m := infShape.FindStringSubmatch(s); m != nil {
		return Inf(parseSign(m[1])), nil
	}
	if nanShape.MatchString(s) {
		return NaN(), nil
	}

	return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidLiteral)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(text string) Decimal {
	d, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", text, err))
	}
	return d
}

func parseSign(s string) Sign {
	if s == "-" {
		return Negative
	}
	return Positive
}
