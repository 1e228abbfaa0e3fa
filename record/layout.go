package record

import (
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/capitalrx/overpunch/picture"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("record")

// Field is a single signed overpunch field of a record.
type Field struct {
	Name    string `yaml:"name"`
	Picture string `yaml:"picture"`
	Width   int    `yaml:"width"`
}

// Decimals returns the number of implied decimal places of the field.
func (f Field) Decimals() int {
	return picture.DecimalPlaces(f.Picture)
}

// Layout is an ordered list of fields.
type Layout struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// ParseLayout reads a YAML layout and validates it.
func ParseLayout(data []byte) (l *Layout, err error) {
	l = &Layout{}

	err = yaml.Unmarshal(data, l)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	err = l.Validate()
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks that the layout has at least one field, that field names are
// present and unique, and that every field is wide enough to hold its decimal
// places plus one integer digit.
func (l *Layout) Validate() error {
	if len(l.Fields) == 0 {
		return Error.New("layout %q has no fields", l.Name)
	}

	names := make(map[string]struct{}, len(l.Fields))

	for i, f := range l.Fields {
		if f.Name == "" {
			return Error.New("field %d has no name", i)
		}

		if _, ok := names[f.Name]; ok {
			return Error.New("duplicate field %q", f.Name)
		}
		names[f.Name] = struct{}{}

		if f.Width <= 0 {
			return Error.New("field %q: invalid width %d", f.Name, f.Width)
		}

		if f.Width < f.Decimals()+1 {
			return Error.New(
				"field %q: width %d cannot hold picture %q",
				f.Name,
				f.Width,
				f.Picture,
			)
		}
	}

	return nil
}

// Width returns the total width of a record in bytes.
func (l *Layout) Width() (w int) {
	for _, f := range l.Fields {
		w += f.Width
	}

	return w
}
