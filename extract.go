package songbook

import "strings"

// missingColumn marks a header column that was not found.
const missingColumn = -1

// columnLayout holds the resolved positions of the known columns.
type columnLayout struct {
	artist int
	title  int
	source int
}

// resolveColumns matches header cells case-insensitively against the known
// column names. The first matching cell wins; missing columns stay at
// missingColumn.
func resolveColumns(header []string) columnLayout {
	layout := columnLayout{artist: missingColumn, title: missingColumn, source: missingColumn}
	for i, cell := range header {
		switch strings.ToLower(cell) {
		case "artist":
			if layout.artist == missingColumn {
				layout.artist = i
			}
		case "title":
			if layout.title == missingColumn {
				layout.title = i
			}
		case "source":
			if layout.source == missingColumn {
				layout.source = i
			}
		}
	}
	return layout
}

// cellAt returns the cell at index idx, or "" when the column is missing
// or the row is too short.
func cellAt(row []string, idx int) string {
	if idx == missingColumn || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ExtractSongs parses a worksheet into its songs, in row order.
// The first row is the header; data rows without a title are skipped.
// Absent artist and source values become "".
func ExtractSongs(sheet Sheet) []Song {
	if len(sheet.Rows) == 0 {
		return nil
	}

	layout := resolveColumns(sheet.Rows[0])

	var songs []Song
	for _, row := range sheet.Rows[1:] {
		title := cellAt(row, layout.title)
		if title == "" {
			continue
		}
		songs = append(songs, Song{
			Artist: cellAt(row, layout.artist),
			Title:  title,
			Source: cellAt(row, layout.source),
		})
	}
	return songs
}
