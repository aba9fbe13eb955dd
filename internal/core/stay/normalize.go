package stay

import (
	"staymeter/internal/core/timeparse"
)

// Normalize validates the schema and turns raw rows into Records.
// Schema validation happens before any row work so a missing column fails
// fast with every missing name. Rows whose timestamps do not parse are
// dropped and counted, never fatal
func Normalize(ds Dataset, cols Columns) ([]Record, int, error) {
	var missing []string
	for _, req := range []struct{ role, name string }{
		{"technician", cols.Technician},
		{"arrival", cols.Arrival},
		{"departure", cols.Departure},
	} {
		if req.name == "" || ds.Index(req.name) < 0 {
			name := req.name
			if name == "" {
				name = req.role
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, 0, &SchemaError{Missing: missing}
	}

	techIdx := ds.Index(cols.Technician)
	arrIdx := ds.Index(cols.Arrival)
	depIdx := ds.Index(cols.Departure)
	modelIdx := -1
	if cols.TerminalModel != "" {
		modelIdx = ds.Index(cols.TerminalModel)
	}
	affIdx := -1
	if cols.Affiliate != "" {
		affIdx = ds.Index(cols.Affiliate)
	}

	records := make([]Record, 0, len(ds.Rows))
	failures := 0
	for i := range ds.Rows {
		arr, okA := timeparse.Clock(ds.Cell(i, arrIdx))
		dep, okD := timeparse.Clock(ds.Cell(i, depIdx))
		if !okA || !okD {
			failures++
			continue
		}
		d := dep.Sub(arr)
		records = append(records, Record{
			Row:           i,
			Technician:    ds.Cell(i, techIdx),
			TerminalModel: ds.Cell(i, modelIdx),
			Affiliate:     ds.Cell(i, affIdx),
			Arrival:       arr,
			Departure:     dep,
			Duration:      d,
			Valid:         d >= 0,
		})
	}
	return records, failures, nil
}
