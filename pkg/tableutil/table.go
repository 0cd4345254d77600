// Package tableutil renders plain-text tables whose cells may contain
// East Asian wide characters.
package tableutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type Table struct {
	header []string
	rows   [][]string
}

func New(header ...string) *Table {
	return &Table{header: header}
}

// Append adds a row. Missing cells render empty, extra cells are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes the table aligned by display width, not byte or rune count.
func (t *Table) Render(w io.Writer) error {
	widths := t.widths()

	line := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, c := range cells {
			padded[i] = runewidth.FillRight(c, widths[i])
		}
		return strings.TrimRight(strings.Join(padded, "  "), " ")
	}

	sep := make([]string, len(widths))
	for i, n := range widths {
		sep[i] = strings.Repeat("-", n)
	}

	if _, err := fmt.Fprintln(w, line(t.header)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return err
		}
	}
	return nil
}

// Truncate shortens s to at most width display columns, marking the cut with "…".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
