package bigdec

// Sign is the polarity of a decimal value.
// The zero value is [Positive].
type Sign bool

const (
	Positive Sign = false
	Negative Sign = true
)

// String returns the display glyph of the sign: "" for [Positive]
// and "-" for [Negative].
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return ""
}

// Int returns the sign as a multiplier, 1 or -1.
func (s Sign) Int() int {
	if s == Negative {
		return -1
	}
	return 1
}

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	return !s
}
