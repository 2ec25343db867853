package songbook

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// indexKey is the deduplication key for an index entry: the lower-cased
// (title, artist) pair. Entries from different sections that share a key
// merge into one row, dropping section provenance.
func indexKey(e IndexEntry) string {
	return strings.ToLower(e.Title) + "\x00" + strings.ToLower(e.Artist)
}

// indexLetter returns the index bucket for a title: its first letter
// upper-cased, or "#" for titles that start with a digit or symbol.
func indexLetter(title string) string {
	for _, r := range title {
		if unicode.IsLetter(r) {
			return string(unicode.ToUpper(r))
		}
		return "#"
	}
	return "#"
}

// renderIndex renders the alphabetical index: a page of its own with a
// three-column layout holding a borderless two-column table of title and
// artist, with a shaded full-width cell before each new first letter.
// Entries are sorted by title (case-insensitive, stable) and adjacent
// duplicate (title, artist) pairs collapse into one row. An empty entry
// list produces no output at all.
func renderIndex(entries []IndexEntry) []string {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b IndexEntry) int {
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

	lines := []string{
		"#pagebreak()",
		"",
		"= Hakemisto",
		"",
		"#set text(size: 6pt)",
		"#set par(leading: 0.3em)",
		"#columns(3, gutter: 0.25cm)[",
		"#table(",
		"  columns: (1.5fr, 1fr),",
		"  stroke: none,",
		"  inset: 1.5pt,",
		"  row-gutter: 0pt,",
	}

	currentLetter := ""
	lastKey := ""
	for i, entry := range sorted {
		key := indexKey(entry)
		if i > 0 && key == lastKey {
			continue
		}
		lastKey = key

		if letter := indexLetter(entry.Title); letter != currentLetter {
			currentLetter = letter
			lines = append(lines, fmt.Sprintf(
				`  table.cell(colspan: 2, align: center, inset: 3pt, fill: luma(80%%))[#text(weight: "bold")[%s]],`,
				escapeTypst(currentLetter)))
		}

		artist := ""
		if entry.Artist != "" {
			artist = escapeTypst(entry.Artist)
		}
		lines = append(lines, fmt.Sprintf("  [%s], [%s],", escapeTypst(entry.Title), artist))
	}

	lines = append(lines, ")", "]", "")
	return lines
}
