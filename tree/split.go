package tree

import (
	"encoding/binary"
	"encoding/hex"
	"math"
)

// MaxCategories is the number of categories a split mask can address.
const MaxCategories = 64

/*
Split is the 8-byte payload of a node: the little-endian IEEE-754 encoding
of a threshold for splits on numeric features or the little-endian
encoding of a category bitmask for splits on categorical features. The
payload does not tell which of both it holds.
*/
type Split [8]byte

// UndefinedSplit is the payload of leaves: the NaN bit pattern.
var UndefinedSplit = ThresholdSplit(math.NaN())

// ThresholdSplit returns the payload for the given threshold.
func ThresholdSplit(t float64) Split {
	var s Split
	binary.LittleEndian.PutUint64(s[:], math.Float64bits(t))
	return s
}

// MaskSplit returns the payload for the given category mask.
func MaskSplit(mask uint64) Split {
	var s Split
	binary.LittleEndian.PutUint64(s[:], mask)
	return s
}

// Threshold returns the payload read as a threshold.
func (s Split) Threshold() float64 {
	return math.Float64frombits(s.Mask())
}

// Mask returns the payload read as a category mask.
func (s Split) Mask() uint64 {
	return binary.LittleEndian.Uint64(s[:])
}

/*
Categories returns the indices of the categories set in the payload read
as a category mask, in increasing order.
*/
func (s Split) Categories() []int {
	var result []int
	mask := s.Mask()
	for i := 0; i < MaxCategories; i++ {
		if mask&(1<<uint(i)) != 0 {
			result = append(result, i)
		}
	}
	return result
}

func (s Split) String() string {
	return hex.EncodeToString(s[:])
}
