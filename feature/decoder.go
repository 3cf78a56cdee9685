package feature

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/*
Decoder turns raw values of a field into typed values.

Raw values may be strings (as read from CSV files or documents), byte
slices, booleans or any Go numeric type.
*/
type Decoder interface {
	Decode(raw interface{}) (interface{}, error)
}

/*
Numeric decodes raw values into int64 (integer), float32 (float),
float64 (double) or bool (boolean) values depending on its Kind.
*/
type Numeric struct {
	Kind DataType
}

/*
Categorical decodes raw values into Category values. Its categories may
grow while a tree is built, see Categories.
*/
type Categorical struct {
	Categories *Categories
}

/*
Ordinal decodes raw values into OrdinalValue values, ordered by the
position of their string among the declared values.
*/
type Ordinal struct {
	categories *Categories
}

/*
IntervalSet decodes numeric raw values into IntervalValue values with the
first of its intervals that contains them.
*/
type IntervalSet struct {
	Intervals []Interval
}

/*
Category is a decoded categorical value. Categories holds the categories
of the field at the time the value was decoded and Index the position
of Value among them.
*/
type Category struct {
	Value      string
	Index      int
	Categories []string
}

/*
OrdinalValue is a decoded ordinal value, Rank being the position of
Value among the declared values of the field.
*/
type OrdinalValue struct {
	Value string
	Rank  int
}

/*
IntervalValue is a decoded numeric value along the interval of the field
that contains it.
*/
type IntervalValue struct {
	Value    float64
	Interval Interval
}

/*
NewDecoder takes a field declaration and returns the Decoder for its
values or an error wrapping ErrUnsupportedDataType or
ErrUnsupportedOpType.

Declarations with intervals produce an IntervalSet, categorical ones a
Categorical with the declared values as categories, ordinal ones an
Ordinal (or a Numeric if no values are declared and the data type is
numeric) and continuous ones a Numeric.
*/
func NewDecoder(d Declaration) (Decoder, error) {
	if !d.DataType.valid() {
		return nil, errors.Wrapf(ErrUnsupportedDataType, "field %q: %q", d.Name, d.DataType)
	}
	if !d.OpType.valid() {
		return nil, errors.Wrapf(ErrUnsupportedOpType, "field %q: %q", d.Name, d.OpType)
	}
	if len(d.Intervals) > 0 {
		if !d.DataType.Numeric() {
			return nil, errors.Wrapf(ErrUnsupportedDataType, "field %q: intervals on %q values", d.Name, d.DataType)
		}
		return &IntervalSet{Intervals: d.Intervals}, nil
	}
	switch d.OpType {
	case OpCategorical:
		return &Categorical{Categories: NewCategories(d.Values)}, nil
	case OpOrdinal:
		if len(d.Values) == 0 && d.DataType.Numeric() {
			return &Numeric{Kind: d.DataType}, nil
		}
		return &Ordinal{categories: NewCategories(d.Values)}, nil
	}
	if !d.DataType.Numeric() {
		return nil, errors.Wrapf(ErrUnsupportedDataType, "field %q: continuous %q values", d.Name, d.DataType)
	}
	return &Numeric{Kind: d.DataType}, nil
}

/*
ParseType takes a raw value and a field declaration and returns the raw
value decoded according to the declaration or an error.
*/
func ParseType(raw interface{}, d Declaration) (interface{}, error) {
	dec, err := NewDecoder(d)
	if err != nil {
		return nil, err
	}
	return dec.Decode(raw)
}

// Decode returns the raw value converted to the decoder kind.
func (n *Numeric) Decode(raw interface{}) (interface{}, error) {
	f, err := toFloat(raw)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case TypeInteger:
		return int64(f), nil
	case TypeFloat:
		return float32(f), nil
	case TypeDouble:
		return f, nil
	case TypeBoolean:
		return f != 0, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedDataType, "%q", n.Kind)
}

// Decode returns the Category for the raw value.
func (c *Categorical) Decode(raw interface{}) (interface{}, error) {
	s := toString(raw)
	i, ok := c.Categories.Index(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidCategoricalValue, "%q", s)
	}
	return Category{Value: s, Index: i, Categories: c.Categories.Values()}, nil
}

// Decode returns the OrdinalValue for the raw value.
func (o *Ordinal) Decode(raw interface{}) (interface{}, error) {
	s := toString(raw)
	i, ok := o.categories.Index(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidOrdinalValue, "%q", s)
	}
	return OrdinalValue{Value: s, Rank: i}, nil
}

/*
Rank returns the position of the value among the declared values and
whether it is declared.
*/
func (o *Ordinal) Rank(value string) (int, bool) {
	return o.categories.Index(value)
}

// Values returns the declared values in order.
func (o *Ordinal) Values() []string {
	return o.categories.Values()
}

// Decode returns the IntervalValue for the raw value.
func (is *IntervalSet) Decode(raw interface{}) (interface{}, error) {
	f, err := toFloat(raw)
	if err != nil {
		return nil, err
	}
	for _, i := range is.Intervals {
		if i.Contains(f) {
			return IntervalValue{Value: f, Interval: i}, nil
		}
	}
	return nil, errors.Wrapf(ErrIntervalMembership, "%v", f)
}

/*
Equal returns whether both categories hold the same value.
*/
func (c Category) Equal(o Category) bool {
	return c.Value == o.Value
}

func (c Category) String() string {
	return c.Value
}

/*
Compare returns -1, 0 or 1 when the value ranks before, the same as or
after the given one.
*/
func (ov OrdinalValue) Compare(o OrdinalValue) int {
	switch {
	case ov.Rank < o.Rank:
		return -1
	case ov.Rank > o.Rank:
		return 1
	}
	return 0
}

// Less returns whether the value ranks before the given one.
func (ov OrdinalValue) Less(o OrdinalValue) bool {
	return ov.Compare(o) < 0
}

func (ov OrdinalValue) String() string {
	return ov.Value
}

func toString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return fmt.Sprintf("%v", raw)
}

func toFloat(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string, []byte:
		s := strings.TrimSpace(toString(v))
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		if b, err := strconv.ParseBool(s); err == nil {
			return toFloat(b)
		}
		return math.NaN(), errors.Wrapf(ErrInvalidNumericValue, "%q", s)
	}
	return math.NaN(), errors.Wrapf(ErrInvalidNumericValue, "%v of type %T", raw, raw)
}
