package rose

import (
	"strings"

	"github.com/mesh-intelligence/rose/pkg/types"
)

// Classify derives the category of an item from its name and reports
// whether the name carries the conjured modifier.
//
// A name is conjured when it starts with "Conjured " and something follows
// the prefix; the remainder is then classified. "Conjured" on its own, or
// with only the trailing space, is an ordinary normal item.
func Classify(name string) (conjured bool, category types.Category) {
	if rest, ok := strings.CutPrefix(name, types.PrefixConjured); ok && rest != "" {
		return true, CategoryOf(rest)
	}
	return false, CategoryOf(name)
}

// CategoryOf classifies a base name without conjured handling.
// Matching is case-sensitive. The backstage prefix has no trailing space,
// so "Backstage passes - Hall" qualifies.
func CategoryOf(name string) types.Category {
	switch {
	case name == types.NameAgedBrie:
		return types.CategoryAgedBrie
	case name == types.NameSulfuras:
		return types.CategoryLegendary
	case strings.HasPrefix(name, types.PrefixBackstage):
		return types.CategoryBackstagePass
	default:
		return types.CategoryNormal
	}
}
