package rose

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rose/pkg/types"
)

// Check reports whether it satisfies the preconditions of an update:
// a legendary item must have quality 80, any other item quality within
// [QualityMin, QualityMax]. The production update path never calls it.
func Check(it types.Item) error {
	_, category := Classify(it.Name)
	if category.IsLegendary() {
		if it.Quality != types.LegendaryQuality {
			return fmt.Errorf("%w: %q has quality %d", types.ErrLegendaryQuality, it.Name, it.Quality)
		}
		return nil
	}
	if it.Quality < types.QualityMin || it.Quality > types.QualityMax {
		return fmt.Errorf("%w: %q has quality %d, want %d..%d",
			types.ErrQualityOutOfRange, it.Name, it.Quality, types.QualityMin, types.QualityMax)
	}
	return nil
}

// CheckAll runs Check on every item and joins the violations, each prefixed
// with the item index. It returns nil when all items pass.
func CheckAll(items []types.Item) error {
	var errs []error
	for i, it := range items {
		if err := Check(it); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// UpdateQualityStrict is UpdateQuality with precondition checks. It panics
// on the first item that fails Check, leaving that item and the rest
// unchanged.
func (s *Shop) UpdateQualityStrict() {
	for i := range s.Items {
		if err := Check(s.Items[i]); err != nil {
			panic(fmt.Sprintf("rose: item %d: %v", i, err))
		}
		UpdateItem(&s.Items[i])
	}
}
