/*
Package bigdec implements immutable arbitrary-precision decimal
floating-point numbers.
It preserves exact digit sequences and scale, which makes it suitable for
financial, scientific, and interchange formats where binary floating-point
rounding error is unacceptable.

# Representation

[Decimal] is a tagged union with three forms:

  - Finite: a [Sign], a coefficient, and an exponent.
    The coefficient is an unbounded string of decimal digits and the
    represented value is sign * coefficient * 10^exponent.
  - Infinity: unbounded magnitude with a [Sign].
  - NaN: not a number.

The same numeric value can have multiple finite representations.
For example, 1e2 and 100 have the same value but different coefficients
and exponents. [Decimal.Cmp] compares values, so it reports them equal,
while [Decimal.Rescale] moves between such representations.

Decimals are immutable: every operation is a pure function returning a new
value, so decimals are safe for concurrent use by multiple goroutines
without locking.

# Conversions

The package provides conversions:

  - from/to string:
    [Parse], [MustParse], [Decimal.String], [Decimal.EngString],
    [Decimal.Text].
  - from/to int64:
    [NewFromInt64], [Decimal.Int64].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].

[Parse] accepts whole, fractional, and exponential literals, with
underscores allowed as digit-group separators, as well as the
case-insensitive specials Infinity, Inf, and NaN.
[Decimal.String] picks plain or scientific notation depending on the
exponent, and [Decimal.EngString] keeps a rendered exponent a multiple
of three.

Decimals also marshal to and from text, JSON, SQL, and Tarantool's
MessagePack decimal extension type.

# Comparison and rounding

Comparison is a total order over the finite and infinite values:
negative infinity sorts below every other value and positive infinity
above, and zeros compare equal regardless of sign and exponent.
Comparing NaN with anything has no defined result, so [Decimal.Cmp] and
the relational methods return an error instead of picking one.

[Decimal.Rescale] changes a value's exponent, discarding or extending
digits as needed.
Discarded digits are resolved by one of eight [RoundingMode] policies,
from plain truncation to banker's rounding.
[Context] carries a rounding mode together with display and precision
preferences and applies it through [Context.Quantize].

# Errors

Failures are reported as wrapped sentinel errors, [ErrInvalidLiteral] and
[ErrUndefinedComparison], both matchable with [errors.Is].
No operation mutates its operands, so every failure is atomic.

[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bigdec
