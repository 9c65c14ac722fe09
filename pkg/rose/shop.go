package rose

import "github.com/mesh-intelligence/rose/pkg/types"

// Shop owns the inventory that is advanced one day at a time.
type Shop struct {
	Items []types.Item
}

// NewShop wraps items without copying; updates mutate the caller's slice.
func NewShop(items []types.Item) *Shop {
	return &Shop{Items: items}
}

// UpdateQuality advances every item by one day in place. Items are
// independent, so order does not matter. It has no failure mode.
func (s *Shop) UpdateQuality() {
	for i := range s.Items {
		UpdateItem(&s.Items[i])
	}
}

// Advance returns a new slice holding items advanced by one day.
// The input slice is not modified.
func Advance(items []types.Item) []types.Item {
	out := make([]types.Item, len(items))
	copy(out, items)
	for i := range out {
		UpdateItem(&out[i])
	}
	return out
}
