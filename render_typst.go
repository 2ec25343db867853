package songbook

import "strings"

// Layout thresholds for the Typst renderer.
const (
	// columnThreshold is the section size (songs, pre-grouping) at which
	// the section body switches to a three-column layout.
	columnThreshold = 100
	// unbreakableLimit is the group size below which a group is wrapped
	// in an unbreakable block so it cannot split across columns or pages.
	unbreakableLimit = 30
)

// typstEscapes are the characters that carry markup meaning in Typst.
const typstEscapes = "#*_`$@\\<>"

// escapeTypst escapes text for literal inclusion in Typst source.
// Every markup character gets a backslash prefix; the comment openers
// // and /* are then broken up so they cannot start a comment. The two
// passes run in that order on the same string, not recursively.
func escapeTypst(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if strings.ContainsRune(typstEscapes, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	escaped := strings.ReplaceAll(b.String(), "//", `/\/`)
	return strings.ReplaceAll(escaped, "/*", `/\*`)
}

// formatSongTypst formats one song as a Typst list line.
func formatSongTypst(song Song) string {
	if song.Artist != "" {
		return "- " + escapeTypst(song.Artist) + " – " + escapeTypst(song.Title)
	}
	return "- " + escapeTypst(song.Title)
}

// RenderTypst renders the sections as a complete Typst document: the fixed
// preamble, one page per section, and a trailing alphabetical index.
// Sections of columnThreshold songs or more flow in three columns; groups
// smaller than unbreakableLimit are kept on one page.
func RenderTypst(sections []Section) string {
	lines := []string{typstPreamble}

	// Index entries are collected in the same pass that renders sections.
	var entries []IndexEntry

	first := true
	for _, section := range sections {
		if len(section.Songs) == 0 {
			continue
		}

		for _, song := range section.Songs {
			entries = append(entries, IndexEntry{Title: song.Title, Artist: song.Artist, Section: section.Name})
		}

		// Page break before every section except the first.
		if first {
			first = false
		} else {
			lines = append(lines, "#pagebreak()", "")
		}

		lines = append(lines, "= "+escapeTypst(section.Name), "")

		useColumns := len(section.Songs) >= columnThreshold
		if useColumns {
			lines = append(lines, "#columns(3, gutter: 1cm)[")
		}

		for _, group := range GroupBySource(section.Songs) {
			shortBlock := len(group.Songs) < unbreakableLimit
			if shortBlock {
				lines = append(lines, "#block(breakable: false)[")
			}

			if group.Source != "" {
				lines = append(lines, "== "+escapeTypst(group.Source), "")
			}

			for _, song := range group.Songs {
				lines = append(lines, formatSongTypst(song))
			}

			if shortBlock {
				lines = append(lines, "]")
			}
			lines = append(lines, "")
		}

		if useColumns {
			lines = append(lines, "]")
		}
		lines = append(lines, "")
	}

	lines = append(lines, renderIndex(entries)...)

	return strings.Join(lines, "\n")
}
