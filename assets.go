package songbook

import (
	_ "embed"
)

// typstPreamble is the fixed page setup emitted at the top of every Typst
// document: A4 pages, running section header, compact list typography.
//
//go:embed assets/preamble.typ
var typstPreamble string

// printCSS is the stylesheet injected into the HTML document printed by
// the PDF converter. It approximates the Typst page layout: one section
// per page, tight song lists.
//
//go:embed assets/print.css
var printCSS string
