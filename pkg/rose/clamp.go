package rose

import (
	"math"

	"github.com/mesh-intelligence/rose/pkg/types"
)

// IncToCap raises q by n, never past QualityMax. A q already at or above the
// cap is returned unchanged; it is not pulled back into range.
func IncToCap(q, n int32) int32 {
	if q >= types.QualityMax {
		return q
	}
	sum := int64(q) + int64(n)
	return int32(max(min(sum, types.QualityMax), math.MinInt32))
}

// DecToFloor lowers q by n, never past QualityMin. A q already at or below
// the floor is returned unchanged.
func DecToFloor(q, n int32) int32 {
	if q <= types.QualityMin {
		return q
	}
	diff := int64(q) - int64(n)
	return int32(min(max(diff, types.QualityMin), math.MaxInt32))
}

// decSellIn subtracts one day, saturating at math.MinInt32.
func decSellIn(s int32) int32 {
	if s == math.MinInt32 {
		return s
	}
	return s - 1
}
