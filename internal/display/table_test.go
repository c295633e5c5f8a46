package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Digital-Shane/anim-tidy/internal/clip"
	"github.com/Digital-Shane/anim-tidy/internal/core"
	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
)

func testIndex() *core.PathIndex {
	key := clip.PropertyKey{Property: "x"}
	return core.BuildIndex(core.BatchOf(clip.NewCollection("walk",
		clip.NewCurveTrack("Root/Arm", key),
		clip.NewCurveTrack("Root/Arm", clip.PropertyKey{Property: "y"}),
		clip.NewCurveTrack("", key),
		clip.NewCurveTrack("Root/Tail", key),
	)))
}

func TestRowsFrom(t *testing.T) {
	rows := RowsFrom(testIndex(), func(path string) bool { return path != "Root/Tail" })

	type flat struct {
		Path  string
		Count int
		Found bool
	}
	var got []flat
	for _, r := range rows {
		if r.Found == nil {
			t.Fatalf("row %q has no lookup result", r.Path)
		}
		got = append(got, flat{r.Path, r.Count, *r.Found})
	}
	want := []flat{{"Root/Arm", 2, true}, {"", 1, true}, {"Root/Tail", 1, false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RowsFrom() mismatch (-want +got):\n%s", diff)
	}

	for _, r := range RowsFrom(testIndex(), nil) {
		if r.Found != nil {
			t.Errorf("row %q has lookup result without lookup", r.Path)
		}
	}
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	rows := RowsFrom(testIndex(), func(path string) bool { return path != "Root/Tail" })
	if err := NewTable(12, false).Render(&buf, rows); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"Reference p…  Count  Object",
		"Root/Arm          2  found",
		"(root)            1  found",
		"Root/Tail         1  missing",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRenderWithoutAnchor(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTable(10, false).Render(&buf, RowsFrom(testIndex(), nil)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() wrote %d lines, want 4", len(lines))
	}
	for _, line := range lines[1:] {
		if !strings.HasSuffix(line, "  -") {
			t.Errorf("line %q does not show unknown status", line)
		}
	}
}

func TestPathCellTruncatesWide(t *testing.T) {
	cell := NewTable(6, false).pathCell("Root/Arm/Hand")
	if cell != "Root/…" {
		t.Errorf("pathCell() = %q, want %q", cell, "Root/…")
	}
	cell = NewTable(6, false).pathCell("腕/手")
	if got := runewidth.StringWidth(cell); got != 6 || cell != "腕/手 " {
		t.Errorf("pathCell(wide) = %q (%d cells), want padded to 6 cells", cell, got)
	}
}
