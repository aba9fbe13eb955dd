package spreadsheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"staymeter/internal/core/stay"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses a workbook into a Dataset. sheet may be empty to use the
// first sheet. The first non-empty row is the header; excelize already
// drops trailing blank rows and cells
func ReadXLSX(r io.Reader, sheet string) (stay.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()
	return datasetFromWorkbook(f, sheet)
}

// ReadXLSXFile loads a workbook from disk
func ReadXLSXFile(path, sheet string) (stay.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return datasetFromWorkbook(f, sheet)
}

func datasetFromWorkbook(f *excelize.File, sheet string) (stay.Dataset, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: sheet %q has no header row", sheet)
	}

	return stay.Dataset{Columns: rows[0], Rows: rows[1:]}, nil
}

// Load dispatches on the file extension
func Load(path, sheet string) (stay.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path)
	case ".xlsx", ".xlsm":
		return ReadXLSXFile(path, sheet)
	default:
		return stay.Dataset{}, fmt.Errorf("spreadsheet: unsupported file type %q", filepath.Ext(path))
	}
}
