package record

import (
	"fmt"
	"strings"

	"github.com/calebcase/oops"
	"github.com/govalues/decimal"

	"github.com/capitalrx/overpunch"
)

var (
	// ErrMissingField is returned when encoding a record without a value
	// for one of the layout's fields.
	ErrMissingField = Error.New("missing field")

	// ErrFieldWidth is returned when an encoded value is wider than its
	// field.
	ErrFieldWidth = Error.New("value too wide for field")
)

// Record holds field values by name.
type Record map[string]decimal.Decimal

// FieldError reports the field a record failed on.
type FieldError struct {
	Field  string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Decode splits rec by the layout and decodes every field.
//
// The decimal type has no negative zero, so a field holding } decodes to 0
// and encodes back as {. Every other field survives a Decode and Encode
// round trip unchanged.
func (l *Layout) Decode(rec string) (r Record, err error) {
	if len(rec) != l.Width() {
		return nil, Error.New("record width %d, layout %q width %d", len(rec), l.Name, l.Width())
	}

	r = make(Record, len(l.Fields))
	offset := 0

	for _, f := range l.Fields {
		raw := rec[offset : offset+f.Width]

		d, err := overpunch.Decode(raw, f.Decimals())
		if err != nil {
			return nil, Error.Wrap(&FieldError{
				Field:  f.Name,
				Offset: offset,
				Err:    err,
			})
		}

		r[f.Name] = d
		offset += f.Width
	}

	return r, nil
}

// Encode formats the values of r in layout order. Values for names that are
// not in the layout are ignored.
func (l *Layout) Encode(r Record) (_ string, err error) {
	sb := &strings.Builder{}
	sb.Grow(l.Width())

	offset := 0

	for _, f := range l.Fields {
		v, ok := r[f.Name]
		if !ok {
			return "", Error.Wrap(&FieldError{
				Field:  f.Name,
				Offset: offset,
				Err:    oops.Trace(ErrMissingField),
			})
		}

		s, err := overpunch.Encode(v, f.Decimals())
		if err != nil {
			return "", Error.Wrap(&FieldError{
				Field:  f.Name,
				Offset: offset,
				Err:    err,
			})
		}

		if len(s) > f.Width {
			return "", Error.Wrap(&FieldError{
				Field:  f.Name,
				Offset: offset,
				Err:    oops.Trace(ErrFieldWidth),
			})
		}

		for i := len(s); i < f.Width; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)

		offset += f.Width
	}

	return sb.String(), nil
}
