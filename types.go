package songbook

import (
	"fmt"
	"strings"
	"time"
)

// Song is one catalog entry extracted from a worksheet row.
// Title is always non-empty; Artist and Source default to "".
type Song struct {
	Artist string
	Title  string
	Source string
}

// Sheet is a named worksheet: a header row followed by data rows.
// Cells are plain strings; short rows are allowed.
type Sheet struct {
	Name string
	Rows [][]string
}

// Section pairs a sheet name with the songs extracted from it.
type Section struct {
	Name  string
	Songs []Song
}

// SourceGroup holds the songs of one section that share a source value.
// The empty source forms its own group.
type SourceGroup struct {
	Source string
	Songs  []Song
}

// IndexEntry is one line of the alphabetical index, collected across
// all sections.
type IndexEntry struct {
	Title   string
	Artist  string
	Section string
}

// DefaultSectionOrder is the priority list applied to sheet names when the
// caller supplies none. Sheets not on the list follow in workbook order.
var DefaultSectionOrder = []string{
	"Anime",
	"Japani",
	"Korea",
	"Kiina",
	"My Little Pony",
	"Disney",
	"Englanti",
	"Suomi",
	"Muut",
}

// Format selects the output document format.
type Format string

// Supported output formats.
const (
	FormatHTML  Format = "html"
	FormatTypst Format = "typst"
	FormatPDF   Format = "pdf"
)

var formats = []Format{FormatHTML, FormatTypst, FormatPDF}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat converts a flag, environment, or config string into a
// Format. Matching folds case, so "TYPST" and "typst" are the same format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(s)
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DefaultOutputName returns the default output file name for the format.
func (f Format) DefaultOutputName() string {
	switch f {
	case FormatTypst:
		return "karaoke.typ"
	case FormatPDF:
		return "karaoke.pdf"
	default:
		return "karaoke.html"
	}
}

// Input contains generation parameters.
type Input struct {
	Path   string   // Workbook path (required)
	Format Format   // Output format (required)
	Order  []string // Section priority list (nil = DefaultSectionOrder)
}

// Result holds the generated document.
// Text is set for HTML and Typst output, PDF for PDF output.
type Result struct {
	Text string
	PDF  []byte
}

// Bytes returns the document content regardless of format.
func (r *Result) Bytes() []byte {
	if r.PDF != nil {
		return r.PDF
	}
	return []byte(r.Text)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	order   []string
	timeout time.Duration
}

// defaultTimeout bounds PDF generation when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("songbook: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithSectionOrder sets the default section priority list used when
// Input.Order is nil.
func WithSectionOrder(order []string) Option {
	return func(s *Service) {
		s.cfg.order = order
	}
}

// WithWorkbookReader injects a workbook reader (e.g., a fake in tests).
func WithWorkbookReader(r WorkbookReader) Option {
	return func(s *Service) {
		s.reader = r
	}
}

// WithPDFConverter injects a PDF converter (e.g., a fake in tests).
func WithPDFConverter(c PDFConverter) Option {
	return func(s *Service) {
		s.pdf = c
	}
}
