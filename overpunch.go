package overpunch

import (
	"math/bits"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/govalues/decimal"

	"github.com/capitalrx/overpunch/picture"
)

// pow10[i] is 10^i. 10^19 is the largest power that fits a uint64.
var pow10 = func() (p [decimal.MaxScale + 1]uint64) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}

	return p
}()

func checkScale(decimals int) error {
	if decimals < 0 || decimals > decimal.MaxScale {
		return Error.Wrap(oops.Trace(ErrScaleRange))
	}

	return nil
}

// Decode parses a signed overpunch field holding decimals implied fractional
// digits.
//
// Fields shorter than decimals+1 are read as if padded with leading zeros, so
// "5" with two decimal places is 0.05. The result always has a scale of
// exactly decimals.
func Decode(raw string, decimals int) (d decimal.Decimal, err error) {
	if raw == "" {
		return d, Error.Wrap(oops.Trace(ErrEmptyField))
	}

	err = checkScale(decimals)
	if err != nil {
		return d, err
	}

	last := len(raw) - 1

	sd, ok := Lookup(raw[last])
	if !ok {
		return d, Error.Wrap(&ParseError{Input: raw})
	}

	for i := 0; i < last; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return d, Error.Wrap(&ParseError{Input: raw})
		}
	}

	pad := 0
	if decimals > 0 && len(raw) < decimals+1 {
		pad = decimals + 1 - len(raw)
	}

	// sign, padding, digits and point
	buf := make([]byte, 0, 1+pad+len(raw)+1)

	if sd.Negative {
		buf = append(buf, '-')
	}

	for i := 0; i < pad; i++ {
		buf = append(buf, '0')
	}

	buf = append(buf, raw[:last]...)
	buf = append(buf, '0'+sd.Digit)

	if decimals > 0 {
		point := len(buf) - decimals
		buf = append(buf, 0)
		copy(buf[point+1:], buf[point:])
		buf[point] = '.'
	}

	d, err = decimal.ParseExact(string(buf), decimals)
	if err != nil {
		return decimal.Decimal{}, Error.Wrap(&ParseError{Input: raw, Err: err})
	}

	return d, nil
}

// Encode formats value as a signed overpunch field with decimals implied
// fractional digits.
//
// The magnitude is rounded half away from zero to decimals places, so 0.005
// becomes 00A at two places and -0.005 becomes 00J. The sign is taken from the
// value before rounding: a negative value that rounds to zero still encodes
// with a negative zero character. The result has at least decimals+1 digits
// and never contains a decimal point.
func Encode(value decimal.Decimal, decimals int) (_ string, err error) {
	err = checkScale(decimals)
	if err != nil {
		return "", err
	}

	n, ok := scaled(value.Coef(), value.Scale(), decimals)
	if !ok {
		return "", Error.Wrap(&OverflowError{Value: value.String()})
	}

	var tmp [20]byte
	digits := strconv.AppendUint(tmp[:0], n, 10)

	width := len(digits)
	if width < decimals+1 {
		width = decimals + 1
	}

	buf := make([]byte, width)
	pad := width - len(digits)
	for i := 0; i < pad; i++ {
		buf[i] = '0'
	}
	copy(buf[pad:], digits)

	c, ok := Punch(value.IsNeg(), buf[width-1]-'0')
	if !ok {
		return "", Error.Wrap(&ParseError{Input: string(buf)})
	}
	buf[width-1] = c

	return string(buf), nil
}

// scaled returns coef / 10^scale as an integer count of 10^-decimals units,
// rounding half away from zero. ok is false if the result overflows.
func scaled(coef uint64, scale, decimals int) (n uint64, ok bool) {
	switch {
	case scale > decimals:
		unit := pow10[scale-decimals]
		n = coef / unit

		// unit is at least 10, so unit/2 is exact.
		if coef%unit >= unit/2 {
			n++
		}

		return n, true
	case scale < decimals:
		hi, lo := bits.Mul64(coef, pow10[decimals-scale])
		if hi != 0 {
			return 0, false
		}

		return lo, true
	}

	return coef, true
}

// DecodePicture is like Decode, but derives the decimal places from a picture
// clause such as s9(7)v99. It reports false instead of an error.
func DecodePicture(raw, pic string) (decimal.Decimal, bool) {
	d, err := Decode(raw, picture.DecimalPlaces(pic))
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}

// EncodePicture is like Encode, but derives the decimal places from a picture
// clause such as s9(7)v99. It reports false instead of an error.
func EncodePicture(value decimal.Decimal, pic string) (string, bool) {
	s, err := Encode(value, picture.DecimalPlaces(pic))
	if err != nil {
		return "", false
	}

	return s, true
}
