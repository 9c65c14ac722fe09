package types

// Category is the update rule family an item belongs to. It is never stored
// on the item; it is derived from the item name on every update.
type Category int

const (
	CategoryNormal Category = iota
	CategoryAgedBrie
	CategoryBackstagePass
	CategoryLegendary
)

// Names and prefixes that select a category.
const (
	NameAgedBrie    = "Aged Brie"
	NameSulfuras    = "Sulfuras, Hand of Ragnaros"
	PrefixBackstage = "Backstage passes"

	// PrefixConjured marks an item as conjured. The trailing space is part
	// of the prefix.
	PrefixConjured = "Conjured "
)

var categoryNames = map[Category]string{
	CategoryNormal:        "normal",
	CategoryAgedBrie:      "aged_brie",
	CategoryBackstagePass: "backstage_pass",
	CategoryLegendary:     "legendary",
}

// String returns the snake_case name of the category.
func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// IsLegendary reports whether items of this category are immutable.
func (c Category) IsLegendary() bool {
	return c == CategoryLegendary
}
