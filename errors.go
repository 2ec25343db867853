package songbook

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath         = errors.New("workbook path cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrOpenWorkbook      = errors.New("failed to open workbook")
	ErrReadSheet         = errors.New("failed to read worksheet")

	// PDF generation errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
