package songbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WorkbookReader abstracts workbook loading to allow fakes in tests.
// Sheets are returned in workbook order.
type WorkbookReader interface {
	Load(path string) ([]Sheet, error)
}

// Compile-time interface check.
var _ WorkbookReader = (*XLSXReader)(nil)

// XLSXReader reads XLSX workbooks using excelize.
type XLSXReader struct{}

// NewXLSXReader creates an XLSXReader.
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Load opens the workbook at path and returns every sheet with its rows
// as strings. Formula cells yield their computed values.
func (r *XLSXReader) Load(path string) ([]Sheet, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenWorkbook, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrReadSheet, name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}

	return sheets, nil
}
