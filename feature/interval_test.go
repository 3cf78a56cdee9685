package feature

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func margin(v float64) *float64 {
	return &v
}

func intervalDeclaration(t *testing.T) Declaration {
	below, err := NewInterval(ClosedOpen, margin(1), margin(5))
	require.NoError(t, err)
	above, err := NewInterval(ClosedClosed, margin(5), margin(10))
	require.NoError(t, err)
	return Declaration{Name: "x", OpType: OpContinuous, DataType: TypeDouble, Intervals: []Interval{below, above}}
}

func TestParseTypeInterval(t *testing.T) {
	d := intervalDeclaration(t)

	v, err := ParseType("1", d)
	require.NoError(t, err)
	assert.Equal(t, d.Intervals[0], v.(IntervalValue).Interval)

	v, err = ParseType(5.0, d)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.(IntervalValue).Value)
	assert.Equal(t, d.Intervals[1], v.(IntervalValue).Interval)

	v, err = ParseType("10", d)
	require.NoError(t, err)
	assert.Equal(t, d.Intervals[1], v.(IntervalValue).Interval)

	_, err = ParseType("10.5", d)
	assert.True(t, errors.Is(err, ErrIntervalMembership))
	_, err = ParseType(0.5, d)
	assert.True(t, errors.Is(err, ErrIntervalMembership))
}

func TestOpenBoundaryWithoutCoveringInterval(t *testing.T) {
	below, err := NewInterval(OpenOpen, margin(1), margin(5))
	require.NoError(t, err)
	above, err := NewInterval(OpenClosed, margin(5), margin(10))
	require.NoError(t, err)
	d := Declaration{Name: "x", OpType: OpContinuous, DataType: TypeDouble, Intervals: []Interval{below, above}}

	_, err = ParseType(5, d)
	assert.True(t, errors.Is(err, ErrIntervalMembership))
	_, err = ParseType(1, d)
	assert.True(t, errors.Is(err, ErrIntervalMembership))
	_, err = ParseType(10, d)
	assert.NoError(t, err)
}

func TestUnboundedIntervals(t *testing.T) {
	lower, err := NewInterval(OpenClosed, nil, margin(0))
	require.NoError(t, err)
	assert.True(t, lower.Contains(-1e300))
	assert.True(t, lower.Contains(0))
	assert.False(t, lower.Contains(0.1))
	assert.Equal(t, "(-Inf, 0]", lower.String())

	upper, err := NewInterval(OpenOpen, margin(0), nil)
	require.NoError(t, err)
	assert.False(t, upper.Contains(0))
	assert.True(t, upper.Contains(1e300))
	assert.Equal(t, "(0, +Inf)", upper.String())
}

func TestNewIntervalErrors(t *testing.T) {
	_, err := NewInterval(OpenOpen, nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidInterval))

	_, err = NewInterval("halfOpen", margin(0), margin(1))
	assert.True(t, errors.Is(err, ErrInvalidInterval))

	_, err = NewInterval(ClosedClosed, margin(2), margin(1))
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}

func TestIntervalsOnStringFields(t *testing.T) {
	d := intervalDeclaration(t)
	d.DataType = TypeString
	_, err := NewDecoder(d)
	assert.True(t, errors.Is(err, ErrUnsupportedDataType))
}
