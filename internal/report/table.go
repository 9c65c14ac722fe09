package report

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/rose/pkg/rose"
	"github.com/mesh-intelligence/rose/pkg/types"
)

// tableWriter renders each day as an aligned table with a styled header.
type tableWriter struct {
	w      *bufio.Writer
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
}

func newTableWriter(w *bufio.Writer) *tableWriter {
	r := lipgloss.NewRenderer(w)
	return &tableWriter{
		w:      w,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")),
		header: r.NewStyle().Bold(true).Underline(true),
		cell:   r.NewStyle(),
	}
}

var tableHeaders = []string{"NAME", "CATEGORY", "SELL IN", "QUALITY"}

func (t *tableWriter) WriteDay(day int, items []types.Item) error {
	rows := make([][]string, 0, len(items))
	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, it := range items {
		conjured, category := rose.Classify(it.Name)
		kind := category.String()
		if conjured {
			kind += "+conjured"
		}
		row := []string{
			it.Name,
			kind,
			strconv.FormatInt(int64(it.SellIn), 10),
			strconv.FormatInt(int64(it.Quality), 10),
		}
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(t.w, t.title.Render(fmt.Sprintf("day %d", day)))
	fmt.Fprintln(t.w, t.renderRow(t.header, tableHeaders, widths))
	for _, row := range rows {
		fmt.Fprintln(t.w, t.renderRow(t.cell, row, widths))
	}
	_, err := fmt.Fprintln(t.w)
	return err
}

// renderRow pads each cell to its column width. Numeric columns are
// right-aligned.
func (t *tableWriter) renderRow(style lipgloss.Style, cells []string, widths []int) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		s := style.Width(widths[i])
		if i >= 2 {
			s = s.Align(lipgloss.Right)
		}
		rendered[i] = s.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, "  ")...)
}

func interleave(cells []string, sep string) []string {
	out := make([]string, 0, len(cells)*2)
	for i, c := range cells {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return out
}

func (t *tableWriter) Flush() error {
	return t.w.Flush()
}
