package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"staymeter/internal/core/stay"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadCSV parses header-first CSV into a Dataset. Ragged rows are kept as-is
// (the engine treats short rows as blank cells); fully blank lines are
// skipped by the csv reader
func ReadCSV(r io.Reader) (stay.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: csv has no header row")
	}
	if err != nil {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: read csv header: %w", err)
	}

	ds := stay.Dataset{Columns: header, Rows: [][]string{}}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stay.Dataset{}, fmt.Errorf("spreadsheet: read csv row: %w", err)
		}
		ds.Rows = append(ds.Rows, rec)
	}
	return ds, nil
}

// ReadCSVBytes decodes raw bytes, falling back to Latin-1 when the payload
// is not valid UTF-8, then parses as CSV
func ReadCSVBytes(b []byte) (stay.Dataset, error) {
	if !utf8.Valid(b) {
		decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
		if err != nil {
			return stay.Dataset{}, fmt.Errorf("spreadsheet: latin-1 decode: %w", err)
		}
		b = decoded
	}
	return ReadCSV(bytes.NewReader(b))
}

// ReadCSVFile loads a CSV file from disk with the encoding fallback
func ReadCSVFile(path string) (stay.Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return stay.Dataset{}, fmt.Errorf("spreadsheet: open %s: %w", path, err)
	}
	return ReadCSVBytes(b)
}
