package bigdec

import "github.com/pkg/errors"

// Tarantool's PackedDecimal payload is a msgpack-encoded scale followed
// by the coefficient digits in packed BCD: two digits per byte, most
// significant first, with the final nibble holding the sign.
// An extra zero nibble pads the front when the digit count is even, so
// the nibble count always comes out even.
//
// See https://www.tarantool.io/en/doc/latest/dev_guide/internals/msgpack_extensions/#the-decimal-type

const (
	bcdSignPlus  = 0x0c
	bcdSignMinus = 0x0d
)

// encodeBCD packs a coefficient digit string and a sign into BCD bytes.
func encodeBCD(coef string, sign Sign) []byte {
	nibbles := make([]byte, 0, len(coef)+2)
	if len(coef)%2 == 0 {
		nibbles = append(nibbles, 0)
	}
	for i := 0; i < len(coef); i++ {
		nibbles = append(nibbles, coef[i]-'0')
	}
	if sign == Negative {
		nibbles = append(nibbles, bcdSignMinus)
	} else {
		nibbles = append(nibbles, bcdSignPlus)
	}

	buf := make([]byte, len(nibbles)/2)
	for i := range buf {
		buf[i] = nibbles[2*i]<<4 | nibbles[2*i+1]
	}
	return buf
}

// decodeBCD unpacks BCD bytes into a coefficient digit string and a sign.
func decodeBCD(data []byte) (string, Sign, error) {
	if len(data) == 0 {
		return "", Positive, errors.New("empty BCD buffer")
	}

	var sign Sign
	switch data[len(data)-1] & 0x0f {
	case 0x0a, bcdSignPlus, 0x0e:
		sign = Positive
	case 0x0b, bcdSignMinus:
		sign = Negative
	default:
		return "", Positive, errors.Errorf("invalid sign nibble %x", data[len(data)-1]&0x0f)
	}

	digits := make([]byte, 0, 2*len(data)-1)
	for i, b := range data {
		hi, lo := b>>4, b&0x0f
		if hi > 9 {
			return "", Positive, errors.Errorf("invalid digit nibble %x", hi)
		}
		digits = append(digits, hi+'0')
		if i < len(data)-1 {
			if lo > 9 {
				return "", Positive, errors.Errorf("invalid digit nibble %x", lo)
			}
			digits = append(digits, lo+'0')
		}
	}
	return string(digits), sign, nil
}
