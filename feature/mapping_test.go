package feature

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSample map[string]interface{}

func (s mapSample) ValueFor(_ context.Context, field string) (interface{}, error) {
	return s[field], nil
}

func testDeclarations() []Declaration {
	return []Declaration{
		{Name: "class", OpType: OpCategorical, DataType: TypeString, Values: []string{"yes", "no"}},
		{Name: "length", OpType: OpContinuous, DataType: TypeDouble},
		{Name: "color", OpType: OpCategorical, DataType: TypeString, Values: []string{"red", "green"}},
		{Name: "size", OpType: OpOrdinal, DataType: TypeString, Values: []string{"S", "M", "L"}},
		{Name: "new", OpType: OpContinuous, DataType: TypeBoolean},
	}
}

func TestNewMapping(t *testing.T) {
	m, err := NewMapping(testDeclarations(), nil, "class")
	require.NoError(t, err)

	assert.Equal(t, 4, m.Columns())
	assert.Equal(t, "class", m.Target().Name)
	assert.Equal(t, TargetColumn, m.Target().Column)
	assert.Equal(t, []string{"yes", "no"}, m.Classes())
	assert.Equal(t, []int{-1, 2, -1, -1}, m.CategoryCounts())

	names := []string{}
	for i, f := range m.Fields() {
		assert.Equal(t, i, f.Column)
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"length", "color", "size", "new"}, names)

	f, err := m.Lookup("size")
	require.NoError(t, err)
	assert.Equal(t, 2, f.Column)

	_, err = m.Lookup("weight")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestNewMappingErrors(t *testing.T) {
	_, err := NewMapping(testDeclarations(), nil, "missing")
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = NewMapping(append(testDeclarations(), Declaration{Name: "length", OpType: OpContinuous, DataType: TypeDouble}), nil, "class")
	assert.True(t, errors.Is(err, ErrDuplicateField))

	_, err = NewMapping(testDeclarations(), []Derivation{{Declaration: Declaration{Name: "d", OpType: OpContinuous, DataType: TypeInteger}, Ref: "nope"}}, "class")
	assert.True(t, errors.Is(err, ErrUnknownField))

	for _, d := range []Declaration{
		{Name: "d", OpType: OpCategorical, DataType: TypeString},
		{Name: "d", OpType: OpOrdinal, DataType: TypeString, Values: []string{"S", "M"}},
	} {
		_, err = NewMapping(testDeclarations(), []Derivation{{Declaration: d, Ref: "color"}}, "class")
		assert.True(t, errors.Is(err, ErrUnsupportedDataType), "%s derivation: %v", d.OpType, err)
	}

	_, err = NewMapping([]Declaration{{Name: "x", OpType: OpContinuous, DataType: "date"}}, nil, "")
	assert.True(t, errors.Is(err, ErrUnsupportedDataType))
}

func TestDerivedFieldCasts(t *testing.T) {
	derived := []Derivation{{
		Declaration: Declaration{Name: "integer(length)", OpType: OpContinuous, DataType: TypeInteger},
		Ref:         "length",
	}}
	m, err := NewMapping(testDeclarations(), derived, "class")
	require.NoError(t, err)

	f, err := m.Lookup("integer(length)")
	require.NoError(t, err)
	assert.Equal(t, 0, f.Column)
	v, err := f.Decoder.Decode("3.75")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	ref, err := m.Lookup("length")
	require.NoError(t, err)
	v, err = ref.Decoder.Decode("3.75")
	require.NoError(t, err)
	assert.Equal(t, 3.75, v)

	assert.Equal(t, 4, m.Columns())
}

func TestVector(t *testing.T) {
	m, err := NewMapping(testDeclarations(), nil, "class")
	require.NoError(t, err)

	x, err := m.Vector(context.Background(), mapSample{"class": "yes", "length": "2.5", "color": "green", "size": "L", "new": "true"})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 1, 2, 1}, x)

	x, err = m.Vector(context.Background(), mapSample{"length": 1})
	require.NoError(t, err)
	require.Len(t, x, 4)
	assert.Equal(t, 1.0, x[0])
	for _, v := range x[1:] {
		assert.True(t, math.IsNaN(v))
	}

	_, err = m.Vector(context.Background(), mapSample{"color": "blue"})
	assert.True(t, errors.Is(err, ErrInvalidCategoricalValue))
}

func TestExtendAndDeclarations(t *testing.T) {
	m, err := NewMapping(testDeclarations(), nil, "class")
	require.NoError(t, err)

	err = m.Extend([]Declaration{
		{Name: "color", OpType: OpCategorical, DataType: TypeString, Values: []string{"green", "blue"}},
		{Name: "length", OpType: OpContinuous, DataType: TypeDouble},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 3, -1, -1}, m.CategoryCounts())

	declarations := m.Declarations()
	require.Len(t, declarations, 5)
	assert.Equal(t, "class", declarations[0].Name)
	assert.Equal(t, []string{"red", "green", "blue"}, declarations[2].Values)

	err = m.Extend([]Declaration{{Name: "weight"}})
	assert.True(t, errors.Is(err, ErrUnknownField))
}
