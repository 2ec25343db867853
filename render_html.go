package songbook

import (
	"fmt"
	"html"
	"strings"
)

// formatSongHTML formats one song as a list item. Artist and title are
// joined with an en dash; a song without an artist shows the title alone.
func formatSongHTML(song Song) string {
	if song.Artist != "" {
		return fmt.Sprintf("<li>%s – %s</li>", html.EscapeString(song.Artist), html.EscapeString(song.Title))
	}
	return fmt.Sprintf("<li>%s</li>", html.EscapeString(song.Title))
}

// RenderHTML renders the sections as an HTML fragment: an h2 per section,
// an h3 per non-empty source, and a ul of songs per group. Sections
// without songs produce no output. The fragment carries no <html> or
// <body> wrapper.
func RenderHTML(sections []Section) string {
	var lines []string

	for _, section := range sections {
		if len(section.Songs) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("<h2>%s</h2>", html.EscapeString(section.Name)))

		for _, group := range GroupBySource(section.Songs) {
			if group.Source != "" {
				lines = append(lines, fmt.Sprintf("<h3>%s</h3>", html.EscapeString(group.Source)))
			}

			lines = append(lines, "<ul>")
			for _, song := range group.Songs {
				lines = append(lines, formatSongHTML(song))
			}
			lines = append(lines, "</ul>")
		}
	}

	return strings.Join(lines, "\n")
}
