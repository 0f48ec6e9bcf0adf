package bigdec

import (
	"bytes"
	"io"
	"reflect"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// decimalExtID is the MessagePack extension type of Tarantool's decimal.
const decimalExtID = 1

// MarshalMsgpack implements a custom msgpack marshaler producing
// Tarantool's decimal extension payload.
// Special values have no decimal extension representation and refuse
// to marshal.
func (d Decimal) MarshalMsgpack() ([]byte, error) {
	if d.form != finite {
		return nil, errors.Errorf("msgpack: %s has no decimal ext representation", d)
	}
	buf, err := msgpack.Marshal(-d.exp)
	if err != nil {
		return nil, errors.Wrap(err, "msgpack: can't encode decimal scale")
	}
	return append(buf, encodeBCD(d.Coef(), d.sign)...), nil
}

// UnmarshalMsgpack implements a custom msgpack unmarshaler for
// Tarantool's decimal extension payload.
func (d *Decimal) UnmarshalMsgpack(data []byte) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	scale, err := dec.DecodeInt()
	if err != nil {
		return errors.Wrap(err, "msgpack: can't decode decimal scale")
	}
	rest, err := io.ReadAll(dec.Buffered())
	if err != nil {
		return errors.Wrap(err, "msgpack: can't read BCD buffer")
	}
	coef, sign, err := decodeBCD(rest)
	if err != nil {
		return errors.Wrapf(err, "msgpack: can't decode BCD buffer (%x)", rest)
	}
	*d = newFinite(sign, coef, -scale)
	return nil
}

func decimalEncoder(e *msgpack.Encoder, v reflect.Value) ([]byte, error) {
	return v.Interface().(Decimal).MarshalMsgpack()
}

func decimalDecoder(d *msgpack.Decoder, v reflect.Value, extLen int) error {
	b := make([]byte, extLen)
	switch n, err := d.Buffered().Read(b); {
	case err != nil:
		return err
	case n < extLen:
		return errors.Errorf("msgpack: unexpected end of stream after %d decimal bytes", n)
	}
	return v.Addr().Interface().(*Decimal).UnmarshalMsgpack(b)
}

func init() {
	msgpack.RegisterExtEncoder(decimalExtID, Decimal{}, decimalEncoder)
	msgpack.RegisterExtDecoder(decimalExtID, Decimal{}, decimalDecoder)
}
