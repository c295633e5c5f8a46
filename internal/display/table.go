// Package display renders path tables for the command line tool.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const rootLabel = "(root)"

// Row is one line of the path table.
type Row struct {
	Path  string
	Count int
	// Found reports whether the path addresses an object under the anchor.
	// Nil means no anchor was available to check against.
	Found *bool
}

// RowsFrom builds table rows from idx in path order. lookup may be nil when
// no anchor is configured.
func RowsFrom(idx *core.PathIndex, lookup func(path string) bool) []Row {
	entries := idx.Entries()
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Path: e.Path, Count: e.Count()}
		if lookup != nil {
			found := lookup(e.Path)
			rows[i].Found = &found
		}
	}
	return rows
}

// Table writes rows as fixed width columns.
type Table struct {
	width   int
	found   lipgloss.Style
	missing lipgloss.Style
	header  lipgloss.Style
}

// NewTable creates a table whose path column is width cells wide.
func NewTable(width int, color bool) *Table {
	t := &Table{
		width:   width,
		found:   lipgloss.NewStyle(),
		missing: lipgloss.NewStyle(),
		header:  lipgloss.NewStyle(),
	}
	if color {
		t.found = t.found.Foreground(lipgloss.Color("#2ECC71"))
		t.missing = t.missing.Foreground(lipgloss.Color("#E74C3C")).Bold(true)
		t.header = t.header.Bold(true)
	}
	return t
}

// Render writes a header and one line per row.
func (t *Table) Render(w io.Writer, rows []Row) error {
	var b strings.Builder
	b.WriteString(t.header.Render(t.pathCell("Reference path") + "  " + fmt.Sprintf("%5s", "Count") + "  Object"))
	b.WriteString("\n")

	for _, r := range rows {
		path := r.Path
		if path == "" {
			path = rootLabel
		}
		fmt.Fprintf(&b, "%s  %5d  %s\n", t.pathCell(path), r.Count, t.status(r.Found))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) pathCell(s string) string {
	return runewidth.FillRight(runewidth.Truncate(s, t.width, "…"), t.width)
}

func (t *Table) status(found *bool) string {
	switch {
	case found == nil:
		return "-"
	case *found:
		return t.found.Render("found")
	default:
		return t.missing.Render("missing")
	}
}
