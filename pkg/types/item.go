package types

import "fmt"

// Quality bounds for non-legendary items.
const (
	QualityMin = 0
	QualityMax = 50

	// LegendaryQuality is the conventional quality of a legendary item.
	// It is only checked in strict mode.
	LegendaryQuality = 80
)

// Item is a single stock entry in the shop inventory.
// Items have no identity beyond their position in the inventory and
// names need not be unique.
type Item struct {
	Name    string `json:"name" yaml:"name"`       // Display name; also determines the category.
	SellIn  int32  `json:"sell_in" yaml:"sell_in"` // Days left to sell; negative once expired.
	Quality int32  `json:"quality" yaml:"quality"` // Value score, nominally within [QualityMin, QualityMax].
}

// NewItem builds an item from the given values verbatim. No validation is
// performed; use strict mode to check preconditions.
func NewItem(name string, sellIn, quality int32) Item {
	return Item{
		Name:    name,
		SellIn:  sellIn,
		Quality: quality,
	}
}

// String renders the item as "name, sell_in, quality".
func (it Item) String() string {
	return fmt.Sprintf("%s, %d, %d", it.Name, it.SellIn, it.Quality)
}
