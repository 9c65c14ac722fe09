package rose

import "github.com/mesh-intelligence/rose/pkg/types"

// Update computes the next (sellIn, quality) pair for one simulated day.
//
// The same-day transition uses sellIn before it is decremented. Once the
// decremented sellIn is negative a second, expiry transition is applied.
// Conjured doubles degradation only; increases are never amplified.
// Legendary items are returned unchanged.
func Update(category types.Category, conjured bool, sellIn, quality int32) (int32, int32) {
	if category.IsLegendary() {
		return sellIn, quality
	}

	var delta int32 = 1
	if conjured {
		delta = 2
	}

	switch category {
	case types.CategoryAgedBrie:
		quality = IncToCap(quality, 1)
	case types.CategoryBackstagePass:
		switch {
		case sellIn >= 11:
			quality = IncToCap(quality, 1)
		case sellIn >= 6:
			quality = IncToCap(quality, 2)
		case sellIn >= 1:
			quality = IncToCap(quality, 3)
		}
		// sellIn <= 0 is handled by the expiry pass.
	default:
		quality = DecToFloor(quality, delta)
	}

	sellIn = decSellIn(sellIn)
	if sellIn >= 0 {
		return sellIn, quality
	}

	switch category {
	case types.CategoryAgedBrie:
		quality = IncToCap(quality, 1)
	case types.CategoryBackstagePass:
		quality = 0
	default:
		quality = DecToFloor(quality, delta)
	}
	return sellIn, quality
}

// UpdateItem classifies it by name and advances it by one day in place.
func UpdateItem(it *types.Item) {
	conjured, category := Classify(it.Name)
	it.SellIn, it.Quality = Update(category, conjured, it.SellIn, it.Quality)
}
