package feature

import (
	"context"
	"math"

	"github.com/pkg/errors"
)

// TargetColumn is the column of the target field, which is not part of
// feature vectors.
const TargetColumn = -1

/*
Sample is an interface for something that holds raw values for fields.

Its ValueFor method returns the raw value for the field with the given
name, or nil if the sample has no value for it.
*/
type Sample interface {
	ValueFor(ctx context.Context, field string) (interface{}, error)
}

/*
Field is a named field of the mapping: the column of feature vectors its
values take and the decoder for them.
*/
type Field struct {
	Name        string
	Column      int
	Decoder     Decoder
	declaration Declaration
}

/*
Mapping maps field names to the columns of feature vectors and the
decoders for their values.

A Mapping is read-only once built, except for the categories of
categorical fields, which may only grow (see Categories).
*/
type Mapping struct {
	fields  map[string]*Field
	columns []*Field
	target  *Field
}

/*
NewMapping takes the declarations of the fields in a document, the
derivations on them and the name of the target field (or "" if none)
and returns a Mapping or an error.

Every declared field other than the target gets a column, in declaration
order. Derived fields take the column of the field they reference and a
decoder according to their own declaration.
*/
func NewMapping(declarations []Declaration, derivations []Derivation, target string) (*Mapping, error) {
	m := &Mapping{fields: make(map[string]*Field)}
	for _, d := range declarations {
		dec, err := NewDecoder(d)
		if err != nil {
			return nil, err
		}
		column := TargetColumn
		if d.Name != target {
			column = len(m.columns)
		}
		f, err := m.add(d, column, dec)
		if err != nil {
			return nil, err
		}
		if column == TargetColumn {
			m.target = f
		} else {
			m.columns = append(m.columns, f)
		}
	}
	if target != "" && m.target == nil {
		return nil, errors.Wrapf(ErrUnknownField, "target field %q", target)
	}
	for _, d := range derivations {
		ref, ok := m.fields[d.Ref]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownField, "field %q referenced by derived field %q", d.Ref, d.Name)
		}
		dec, err := NewDecoder(d.Declaration)
		if err != nil {
			return nil, err
		}
		switch dec.(type) {
		case *Numeric, *IntervalSet:
		default:
			// a derived field reads the column of the referenced one, so
			// it cannot hold categories of its own
			return nil, errors.Wrapf(ErrUnsupportedDataType, "derived field %q: only numeric casts are supported", d.Name)
		}
		_, err = m.add(d.Declaration, ref.Column, dec)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Mapping) add(d Declaration, column int, dec Decoder) (*Field, error) {
	if _, ok := m.fields[d.Name]; ok {
		return nil, errors.Wrapf(ErrDuplicateField, "%q", d.Name)
	}
	f := &Field{Name: d.Name, Column: column, Decoder: dec, declaration: d}
	m.fields[d.Name] = f
	return f, nil
}

/*
Lookup returns the field with the given name or an error wrapping
ErrUnknownField.
*/
func (m *Mapping) Lookup(name string) (*Field, error) {
	f, ok := m.fields[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "%q", name)
	}
	return f, nil
}

// Columns returns the length of the feature vectors for the mapping.
func (m *Mapping) Columns() int {
	return len(m.columns)
}

// Fields returns the fields that own a column, in column order.
func (m *Mapping) Fields() []*Field {
	result := make([]*Field, len(m.columns))
	copy(result, m.columns)
	return result
}

// Target returns the target field or nil.
func (m *Mapping) Target() *Field {
	return m.target
}

/*
Classes returns the values declared for the target field, or nil if
there is no categorical or ordinal target.
*/
func (m *Mapping) Classes() []string {
	if m.target == nil {
		return nil
	}
	switch dec := m.target.Decoder.(type) {
	case *Categorical:
		return dec.Categories.Values()
	case *Ordinal:
		return dec.Values()
	}
	return nil
}

/*
CategoryCounts returns, for every column, the number of categories of
its field if categorical and -1 otherwise.
*/
func (m *Mapping) CategoryCounts() []int {
	result := make([]int, len(m.columns))
	for i, f := range m.columns {
		result[i] = -1
		if c, ok := f.Decoder.(*Categorical); ok {
			result[i] = c.Categories.Len()
		}
	}
	return result
}

/*
Extend takes field declarations and appends the values of those for
categorical fields to the categories of the matching fields. It returns
an error wrapping ErrUnknownField if a declaration names no field.
*/
func (m *Mapping) Extend(declarations []Declaration) error {
	for _, d := range declarations {
		f, err := m.Lookup(d.Name)
		if err != nil {
			return err
		}
		if c, ok := f.Decoder.(*Categorical); ok {
			for _, v := range d.Values {
				c.Categories.Add(v)
			}
		}
	}
	return nil
}

/*
Declarations returns the declarations of the fields that own a column and
the target, with categorical fields listing their current categories.
*/
func (m *Mapping) Declarations() []Declaration {
	fields := m.columns
	if m.target != nil {
		fields = append([]*Field{m.target}, fields...)
	}
	result := make([]Declaration, 0, len(fields))
	for _, f := range fields {
		d := f.declaration
		if c, ok := f.Decoder.(*Categorical); ok {
			d.Values = c.Categories.Values()
		}
		result = append(result, d)
	}
	return result
}

/*
Vector takes a sample and returns its feature vector: the decoded value of
every column as a float64. Booleans take 0 or 1, categorical values their
category index, ordinal values their rank and missing values NaN.
*/
func (m *Mapping) Vector(ctx context.Context, s Sample) ([]float64, error) {
	result := make([]float64, len(m.columns))
	for i, f := range m.columns {
		raw, err := s.ValueFor(ctx, f.Name)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			result[i] = math.NaN()
			continue
		}
		v, err := f.Decoder.Decode(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", f.Name)
		}
		result[i] = vectorValue(v)
	}
	return result, nil
}

func vectorValue(v interface{}) float64 {
	switch v := v.(type) {
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	case Category:
		return float64(v.Index)
	case OrdinalValue:
		return float64(v.Rank)
	case IntervalValue:
		return v.Value
	}
	return math.NaN()
}
