// Package songbook turns a spreadsheet of karaoke songs into printable
// song catalogs.
//
// The input is an XLSX workbook where every worksheet is one catalog
// section. The first row of a sheet is a header; columns named "artist",
// "title" and "source" (any casing, any order) are picked up and the rest
// are ignored. Rows without a title are skipped.
//
// # Quick Start
//
// Create a service, generate a document, and close when done:
//
//	svc := songbook.New()
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, songbook.Input{
//	    Path:   "songs.xlsx",
//	    Format: songbook.FormatHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("karaoke.html", result.Bytes(), 0644)
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Workbook loading via excelize ([WorkbookReader])
//  2. Song extraction from sheet rows ([ExtractSongs])
//  3. Section sequencing against a priority list ([SequenceSheets])
//  4. Grouping by source with stable case-insensitive ordering ([GroupBySource])
//  5. Rendering: HTML fragment, Typst source, or PDF
//
// Sections are rendered in the order given by the priority list (default
// [DefaultSectionOrder]); sheets not on the list follow in workbook order.
// Within a section, songs are grouped by their source (the show, movie or
// album they are from) and sorted by artist. The Typst format appends an
// alphabetical title index across all sections.
//
// # PDF Output
//
// [FormatPDF] prints the HTML rendering through headless Chrome. The go-rod
// library downloads a managed Chromium on first run. For containers and CI,
// set ROD_NO_SANDBOX=1; use ROD_BROWSER_BIN to point at an existing Chrome
// binary.
package songbook
