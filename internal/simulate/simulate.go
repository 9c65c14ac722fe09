// Package simulate runs the shop through a number of days, rendering a
// snapshot at the start of each day.
package simulate

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/rose/internal/report"
	"github.com/mesh-intelligence/rose/pkg/rose"
	"github.com/mesh-intelligence/rose/pkg/types"
)

// Options controls a simulation run.
type Options struct {
	Days   int  // Last day rendered. Every rendered day is followed by one update.
	Strict bool // Check preconditions before each update and panic on violation.
}

// Result summarises a finished run.
type Result struct {
	RunID string
	Days  int
	Items []types.Item // State after the update that follows the last rendered day.
}

// NewRunID returns a UUID v7 identifying a run.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Run writes the snapshot for day 0 through opts.Days, advancing the shop
// after each one. The context is checked between days. On cancellation the
// partial output is flushed and ctx.Err() returned.
func Run(ctx context.Context, shop *rose.Shop, opts Options, w report.Writer, runID string, log zerolog.Logger) (Result, error) {
	if opts.Days < 0 {
		return Result{}, fmt.Errorf("%w: %d", types.ErrInvalidDays, opts.Days)
	}
	log = log.With().Str("component", "simulate").Str("run_id", runID).Logger()

	advance := shop.UpdateQuality
	if opts.Strict {
		advance = shop.UpdateQualityStrict
	}

	log.Info().Int("days", opts.Days).Int("items", len(shop.Items)).Bool("strict", opts.Strict).Msg("simulation started")

	for day := 0; day <= opts.Days; day++ {
		if err := ctx.Err(); err != nil {
			log.Warn().Int("day", day).Msg("simulation cancelled")
			if ferr := w.Flush(); ferr != nil {
				return Result{}, fmt.Errorf("flush report: %w", ferr)
			}
			return Result{}, err
		}
		if err := w.WriteDay(day, shop.Items); err != nil {
			return Result{}, fmt.Errorf("write day %d: %w", day, err)
		}
		advance()
		log.Debug().Int("day", day).Msg("day advanced")
	}

	if err := w.Flush(); err != nil {
		return Result{}, fmt.Errorf("flush report: %w", err)
	}

	log.Info().Msg("simulation finished")
	return Result{
		RunID: runID,
		Days:  opts.Days,
		Items: slices.Clone(shop.Items),
	}, nil
}
