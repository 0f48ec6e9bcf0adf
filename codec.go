package bigdec

import (
	"database/sql/driver"
	"strconv"

	"github.com/pkg/errors"
)

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	return d.UnmarshalText(data)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	return d.MarshalText()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// It accepts both quoted and bare JSON numbers.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	var err error
	*d, err = Parse(s)
	return errors.Wrap(err, "unmarshaling decimal")
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as a quoted string, since JSON numbers cannot
// carry Infinity or NaN and readers tend to decode them as float64.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// Scan implements the [sql.Scanner] interface.
// It supports string, []byte, float64, and int64 source values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case string:
		*d, err = Parse(v)
	case []byte:
		*d, err = Parse(string(v))
	case float64:
		*d = NewFromFloat64(v)
	case int64:
		*d = NewFromInt64(v)
	default:
		err = errors.Errorf("unsupported type %T", src)
	}
	return errors.Wrapf(err, "scanning %v into decimal", src)
}

// Value implements the [driver.Valuer] interface.
// Also see method [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
