package simulate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rose/pkg/rose"
	"github.com/mesh-intelligence/rose/pkg/types"
)

// recorder captures snapshots instead of rendering them.
type recorder struct {
	days    []int
	items   [][]types.Item
	flushed int
	failOn  int
}

func (r *recorder) WriteDay(day int, items []types.Item) error {
	if r.failOn > 0 && day == r.failOn {
		return errors.New("disk full")
	}
	r.days = append(r.days, day)
	r.items = append(r.items, append([]types.Item(nil), items...))
	return nil
}

func (r *recorder) Flush() error {
	r.flushed++
	return nil
}

func TestRunWritesEachDayBeforeAdvancing(t *testing.T) {
	shop := rose.NewShop([]types.Item{types.NewItem("Backstage passes to a TAFKAL80ETC concert", 6, 10)})
	rec := &recorder{}

	res, err := Run(context.Background(), shop, Options{Days: 2}, rec, "run-1", zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, rec.days)
	assert.Equal(t, int32(10), rec.items[0][0].Quality)
	assert.Equal(t, int32(12), rec.items[1][0].Quality)
	assert.Equal(t, int32(15), rec.items[2][0].Quality)
	assert.Equal(t, 1, rec.flushed)

	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, 2, res.Days)
	assert.Equal(t, types.NewItem("Backstage passes to a TAFKAL80ETC concert", 3, 18), res.Items[0])
}

func TestRunZeroDays(t *testing.T) {
	shop := rose.NewShop([]types.Item{types.NewItem("foo", 1, 1)})
	rec := &recorder{}

	_, err := Run(context.Background(), shop, Options{}, rec, "r", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, rec.days)
}

func TestRunRejectsNegativeDays(t *testing.T) {
	_, err := Run(context.Background(), rose.NewShop(nil), Options{Days: -1}, &recorder{}, "r", zerolog.Nop())
	assert.ErrorIs(t, err, types.ErrInvalidDays)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}

	_, err := Run(ctx, rose.NewShop(nil), Options{Days: 5}, rec, "r", zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.days)
	assert.Equal(t, 1, rec.flushed)
}

func TestRunWriterError(t *testing.T) {
	rec := &recorder{failOn: 1}
	_, err := Run(context.Background(), rose.NewShop(nil), Options{Days: 3}, rec, "r", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write day 1")
}

func TestRunStrictPanicsOnBadInventory(t *testing.T) {
	shop := rose.NewShop([]types.Item{types.NewItem("foo", 1, 70)})
	assert.Panics(t, func() {
		_, _ = Run(context.Background(), shop, Options{Days: 1, Strict: true}, &recorder{}, "r", zerolog.Nop())
	})
}

func TestRunPermissiveToleratesBadInventory(t *testing.T) {
	shop := rose.NewShop([]types.Item{types.NewItem("foo", 1, 70)})
	res, err := Run(context.Background(), shop, Options{Days: 1}, &recorder{}, "r", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, types.NewItem("foo", -1, 67), res.Items[0])
}

func TestNewRunIDIsUUIDv7(t *testing.T) {
	id, err := uuid.Parse(NewRunID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}
