package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdSplitRoundTrip(t *testing.T) {
	for _, v := range []float64{0, math.Copysign(0, -1), 5.0, -1.25, math.SmallestNonzeroFloat64, math.MaxFloat64, math.Nextafter(3, 0), math.Inf(1)} {
		s := ThresholdSplit(v)
		assert.Equal(t, math.Float64bits(v), math.Float64bits(s.Threshold()), "%v", v)
	}
	assert.True(t, math.IsNaN(UndefinedSplit.Threshold()))
}

func TestMaskSplitRoundTrip(t *testing.T) {
	s := MaskSplit(0x5)
	assert.Equal(t, uint64(0x5), s.Mask())
	assert.Equal(t, []int{0, 2}, s.Categories())
	assert.Equal(t, "0500000000000000", s.String())

	s = MaskSplit(1<<63 | 1<<10)
	assert.Equal(t, []int{10, 63}, s.Categories())
	assert.Len(t, MaskSplit(^uint64(0)).Categories(), MaxCategories)
	assert.Empty(t, MaskSplit(0).Categories())
}

func TestSplitIsLittleEndian(t *testing.T) {
	s := ThresholdSplit(1.0)
	assert.Equal(t, Split{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, s)
}
