package songbook

import (
	"strings"
	"testing"
)

func TestIndexLetter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "lowercase letter upper-cased", title: "abba", expected: "A"},
		{name: "uppercase letter kept", title: "Bohemian", expected: "B"},
		{name: "digit buckets to hash", title: "99 Luftballons", expected: "#"},
		{name: "symbol buckets to hash", title: "(Don't Fear) The Reaper", expected: "#"},
		{name: "accented letter", title: "Älä mene", expected: "Ä"},
		{name: "empty title", title: "", expected: "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := indexLetter(tt.title); got != tt.expected {
				t.Errorf("indexLetter(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestRenderIndexEmpty(t *testing.T) {
	t.Parallel()

	if got := renderIndex(nil); got != nil {
		t.Errorf("renderIndex(nil) = %v, want nil", got)
	}
}

func TestRenderIndexStructure(t *testing.T) {
	t.Parallel()

	entries := []IndexEntry{
		{Title: "Banana Song", Artist: "Minions", Section: "Muut"},
		{Title: "Africa", Artist: "Toto", Section: "Englanti"},
	}

	lines := renderIndex(entries)
	got := strings.Join(lines, "\n")

	for _, want := range []string{
		"#pagebreak()",
		"= Hakemisto",
		"#columns(3, gutter: 0.25cm)[",
		"#table(",
		"  columns: (1.5fr, 1fr),",
		"  stroke: none,",
		"  inset: 1.5pt,",
		"  row-gutter: 0pt,",
		`fill: luma(80%))[#text(weight: "bold")[A]],`,
		`fill: luma(80%))[#text(weight: "bold")[B]],`,
		"  [Africa], [Toto],",
		"  [Banana Song], [Minions],",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	// Sorted by title: Africa before Banana Song.
	if strings.Index(got, "[Africa]") > strings.Index(got, "[Banana Song]") {
		t.Errorf("entries not sorted by title:\n%s", got)
	}
}

func TestRenderIndexLetterHeaderPrecedesRows(t *testing.T) {
	t.Parallel()

	entries := []IndexEntry{
		{Title: "Alpha", Artist: "X", Section: "S"},
		{Title: "anchor", Artist: "Y", Section: "S"},
	}

	got := strings.Join(renderIndex(entries), "\n")

	header := strings.Index(got, `[#text(weight: "bold")[A]]`)
	row := strings.Index(got, "[Alpha]")
	if header < 0 || row < 0 || header > row {
		t.Errorf("letter header not before its rows (header=%d, row=%d):\n%s", header, row, got)
	}
	// Same bucket emits exactly one header.
	if n := strings.Count(got, `[#text(weight: "bold")`); n != 1 {
		t.Errorf("want 1 letter header, got %d:\n%s", n, got)
	}
}

func TestRenderIndexDedup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []IndexEntry
		wantRows []string
		skipRows []string
	}{
		{
			name: "identical pair collapses",
			entries: []IndexEntry{
				{Title: "Duplicate", Artist: "Band", Section: "Anime"},
				{Title: "Duplicate", Artist: "Band", Section: "Suomi"},
			},
			wantRows: []string{"  [Duplicate], [Band],"},
		},
		{
			name: "case-insensitive pair collapses keeping first",
			entries: []IndexEntry{
				{Title: "Duplicate", Artist: "BAND", Section: "Anime"},
				{Title: "duplicate", Artist: "band", Section: "Suomi"},
			},
			wantRows: []string{"  [Duplicate], [BAND],"},
			skipRows: []string{"  [duplicate], [band],"},
		},
		{
			name: "same title different artist kept",
			entries: []IndexEntry{
				{Title: "Hallelujah", Artist: "Jeff Buckley", Section: "Englanti"},
				{Title: "Hallelujah", Artist: "Leonard Cohen", Section: "Englanti"},
			},
			wantRows: []string{
				"  [Hallelujah], [Jeff Buckley],",
				"  [Hallelujah], [Leonard Cohen],",
			},
		},
		{
			name: "missing artist renders empty cell",
			entries: []IndexEntry{
				{Title: "Traditional", Section: "Muut"},
			},
			wantRows: []string{"  [Traditional], [],"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := strings.Join(renderIndex(tt.entries), "\n")
			for _, row := range tt.wantRows {
				if !strings.Contains(got, row) {
					t.Errorf("missing row %q in:\n%s", row, got)
				}
			}
			for _, row := range tt.skipRows {
				if strings.Contains(got, row) {
					t.Errorf("unexpected row %q in:\n%s", row, got)
				}
			}
		})
	}
}

func TestRenderIndexDedupCountsOneRow(t *testing.T) {
	t.Parallel()

	entries := []IndexEntry{
		{Title: "Song", Artist: "A", Section: "S1"},
		{Title: "song", Artist: "a", Section: "S2"},
		{Title: "SONG", Artist: "A", Section: "S3"},
	}

	got := strings.Join(renderIndex(entries), "\n")

	rows := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "  [") {
			rows++
		}
	}
	if rows != 1 {
		t.Errorf("want 1 row after dedup, got %d:\n%s", rows, got)
	}
}
