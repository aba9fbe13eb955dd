package spreadsheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("rename sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "visits.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadXLSXFile_FirstSheetDefault(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Technician", "Arrival Time", "Departure Time"},
		{"A", "09:00 AM", "09:30 AM"},
		{"B", "08:00 AM", "08:20 AM"},
	})

	ds, err := ReadXLSXFile(path, "")
	if err != nil {
		t.Fatalf("ReadXLSXFile error: %v", err)
	}
	if len(ds.Columns) != 3 || ds.Columns[2] != "Departure Time" {
		t.Fatalf("columns mismatch: %v", ds.Columns)
	}
	if len(ds.Rows) != 2 || ds.Cell(0, 0) != "A" {
		t.Fatalf("rows mismatch: %v", ds.Rows)
	}
}

func TestReadXLSXFile_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Visits", [][]any{
		{"Technician", "Arrival Time", "Departure Time"},
		{"C", "10:00 AM", "10:45 AM"},
	})

	ds, err := ReadXLSXFile(path, "Visits")
	if err != nil {
		t.Fatalf("ReadXLSXFile error: %v", err)
	}
	if len(ds.Rows) != 1 || ds.Cell(0, 0) != "C" {
		t.Fatalf("rows mismatch: %v", ds.Rows)
	}

	if _, err := ReadXLSXFile(path, "Nope"); err == nil {
		t.Fatalf("expected error for unknown sheet")
	}
}

func TestLoad_DispatchesByExtension(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Technician", "Arrival Time", "Departure Time"},
		{"A", "09:00 AM", "09:30 AM"},
	})

	ds, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(ds.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(ds.Rows))
	}

	if _, err := Load("visits.pdf", ""); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
