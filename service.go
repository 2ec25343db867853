package songbook

import (
	"context"
	"fmt"
)

// Service orchestrates the workbook-to-document pipeline.
type Service struct {
	cfg    serviceConfig
	reader WorkbookReader
	pdf    PDFConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithSectionOrder, WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    serviceConfig{order: DefaultSectionOrder, timeout: defaultTimeout},
		reader: NewXLSXReader(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests). The browser
	// connection itself is lazy, so non-PDF runs never launch Chrome.
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Generate runs the full pipeline for one workbook and returns the
// rendered document. The context is used for cancellation and timeout of
// PDF generation.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if input.Path == "" {
		return nil, ErrEmptyPath
	}
	format, err := ParseFormat(string(input.Format))
	if err != nil {
		return nil, err
	}

	sheets, err := s.reader.Load(input.Path)
	if err != nil {
		return nil, err
	}

	order := input.Order
	if order == nil {
		order = s.cfg.order
	}

	sections := s.buildSections(sheets, order)

	switch format {
	case FormatTypst:
		return &Result{Text: RenderTypst(sections)}, nil
	case FormatPDF:
		doc := wrapHTMLDocument(RenderHTML(sections))
		pdf, err := s.pdf.ToPDF(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("converting to PDF: %w", err)
		}
		return &Result{PDF: pdf}, nil
	default:
		return &Result{Text: RenderHTML(sections)}, nil
	}
}

// buildSections extracts songs from every sheet and arranges the sections
// in render order.
func (s *Service) buildSections(sheets []Sheet, order []string) []Section {
	byName := make(map[string]Sheet, len(sheets))
	names := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		byName[sheet.Name] = sheet
		names = append(names, sheet.Name)
	}

	sequenced := SequenceSheets(names, order)
	sections := make([]Section, 0, len(sequenced))
	for _, name := range sequenced {
		sections = append(sections, Section{Name: name, Songs: ExtractSongs(byName[name])})
	}
	return sections
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}
