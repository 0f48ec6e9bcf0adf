package bigdec

// Context carries the operating preferences consulted by operations that
// need them: the rounding mode for [Context.Quantize] and the exponent
// letter case for [Context.Text].
// It can safely be used concurrently, but not modified concurrently.
type Context struct {
	// Precision is the maximum number of significant digits for future
	// arithmetic operations. None of the current operations round by
	// precision, but the field is part of the configuration surface.
	Precision int
	// Rounding is the mode applied by Quantize.
	Rounding RoundingMode
	// EMin and EMax bound the adjusted exponent for future
	// overflow and underflow detection. They are reserved and currently
	// not enforced by any operation.
	EMin, EMax int
	// Capitals selects 'E' over 'e' as the exponent letter.
	Capitals bool
}

// BaseContext is a useful default Context. Should not be mutated.
var BaseContext = Context{
	Precision: 28,
	Rounding:  RoundHalfEven,
	EMin:      -999999,
	EMax:      999999,
	Capitals:  true,
}

// WithPrecision returns a copy of c but with the specified precision.
func (c Context) WithPrecision(prec int) Context {
	c.Precision = prec
	return c
}

// WithRounding returns a copy of c but with the specified rounding mode.
func (c Context) WithRounding(mode RoundingMode) Context {
	c.Rounding = mode
	return c
}

// WithCapitals returns a copy of c but with the specified exponent
// letter case.
func (c Context) WithCapitals(capitals bool) Context {
	c.Capitals = capitals
	return c
}

// Quantize returns d rescaled to the given exponent using the context's
// rounding mode.
// Also see method [Decimal.Rescale].
func (c Context) Quantize(d Decimal, exp int) Decimal {
	return d.Rescale(exp, c.Rounding)
}

// Text renders d honoring the context's exponent letter case.
// Also see method [Decimal.String].
func (c Context) Text(d Decimal) string {
	return d.Text(c.Capitals, false)
}

// EngText renders d in engineering notation honoring the context's
// exponent letter case.
// Also see method [Decimal.EngString].
func (c Context) EngText(d Decimal) string {
	return d.Text(c.Capitals, true)
}
