package stay

import "sort"

// Analyze runs the full pipeline over one dataset: normalize, aggregate per
// technician and per model, detect anomalies and build the affiliate
// listings. The only error paths are a schema violation and, when
// Options.ErrorOnEmpty is set, an empty surviving record set; everything
// else degrades to empty tables and counters
func Analyze(ds Dataset, cols Columns, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	records, failures, err := Normalize(ds, cols)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 && opts.ErrorOnEmpty {
		return nil, ErrEmptyResult
	}

	// report surfaces read records in visit order
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Arrival.Before(records[j].Arrival)
	})

	valid := 0
	for _, r := range records {
		if r.Valid {
			valid++
		}
	}

	res := &Result{
		Records:     records,
		Technicians: ByTechnician(records),
		Models:      ByModel(records),
		Anomalies:   DetectAnomalies(records, opts),

		Affiliates:    AffiliateListing(ds, cols),
		TopAffiliates: TopAffiliatesByFailure(ds, cols, opts.TopAffiliates),

		TotalRows:     len(ds.Rows),
		ValidRecords:  valid,
		ParseFailures: failures,
	}
	if res.Records == nil {
		res.Records = []Record{}
	}
	if res.Anomalies == nil {
		res.Anomalies = []Anomaly{}
	}
	return res, nil
}
