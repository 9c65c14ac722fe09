// Package report renders daily inventory snapshots produced by a
// simulation run.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/rose/pkg/rose"
	"github.com/mesh-intelligence/rose/pkg/types"
)

// Writer renders one snapshot per simulated day.
type Writer interface {
	// WriteDay renders the items as they stand at the start of day.
	WriteDay(day int, items []types.Item) error

	// Flush writes any buffered output.
	Flush() error
}

// New returns a Writer for the named format writing to w. The runID is
// carried into formats that record it. Returns ErrUnknownFormat for any
// format other than text, jsonl, or table.
func New(format string, w io.Writer, runID string) (Writer, error) {
	bw := bufio.NewWriter(w)
	switch format {
	case types.FormatText:
		return &textWriter{w: bw}, nil
	case types.FormatJSONL:
		return &jsonlWriter{w: bw, runID: runID}, nil
	case types.FormatTable:
		return newTableWriter(bw), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFormat, format)
	}
}

// textWriter prints the plain "name, sellIn, quality" listing.
type textWriter struct {
	w *bufio.Writer
}

func (t *textWriter) WriteDay(day int, items []types.Item) error {
	fmt.Fprintf(t.w, "-------- day %d --------\n", day)
	fmt.Fprintln(t.w, "name, sellIn, quality")
	for _, it := range items {
		fmt.Fprintln(t.w, it.String())
	}
	_, err := fmt.Fprintln(t.w)
	return err
}

func (t *textWriter) Flush() error {
	return t.w.Flush()
}

// record is one line of jsonl output.
type record struct {
	RunID    string `json:"run_id"`
	Day      int    `json:"day"`
	Name     string `json:"name"`
	SellIn   int32  `json:"sell_in"`
	Quality  int32  `json:"quality"`
	Category string `json:"category"`
	Conjured bool   `json:"conjured"`
}

// jsonlWriter emits one JSON object per item per day.
type jsonlWriter struct {
	w     *bufio.Writer
	runID string
}

func (j *jsonlWriter) WriteDay(day int, items []types.Item) error {
	for _, it := range items {
		conjured, category := rose.Classify(it.Name)
		data, err := json.Marshal(record{
			RunID:    j.runID,
			Day:      day,
			Name:     it.Name,
			SellIn:   it.SellIn,
			Quality:  it.Quality,
			Category: category.String(),
			Conjured: conjured,
		})
		if err != nil {
			return fmt.Errorf("marshal record: %w", err)
		}
		if _, err := j.w.Write(data); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err := j.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	return nil
}

func (j *jsonlWriter) Flush() error {
	return j.w.Flush()
}
