package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: songbook [input.xlsx] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a printable karaoke song catalog from an XLSX workbook.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Workbook file (default: from-google-docs/Frostbite_2026_Karaoke.xlsx)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (default: karaoke.html/.typ/.pdf by format)")
	fmt.Fprintln(w, "  -f, --format <s>        Output format: html, typst, pdf (default: html)")
	fmt.Fprintln(w, "      --order <names>     Section order: comma-separated sheet names, or the")
	fmt.Fprintln(w, "                          flag repeated once per name")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <dur>     PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show progress details")
	fmt.Fprintln(w, "      --version           Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SONGBOOK_CONFIG     Config file path")
	fmt.Fprintln(w, "  SONGBOOK_FORMAT     Output format")
	fmt.Fprintln(w, "  SONGBOOK_TIMEOUT    PDF generation timeout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}
