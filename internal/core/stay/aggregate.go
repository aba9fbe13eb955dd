package stay

import "sort"

// Aggregate groups valid records by keyFn and computes count/mean/min/max
// over their durations in minutes. Records whose key is empty and keys with
// zero valid records emit no row. Output is ordered ascending by mean,
// stable with key ascending on ties
func Aggregate(records []Record, keyFn func(Record) string) []AggregateRow {
	type acc struct {
		count    int
		sum      float64
		min, max float64
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		if !r.Valid {
			continue
		}
		key := keyFn(r)
		if key == "" {
			continue
		}
		m := r.Minutes()
		a, ok := groups[key]
		if !ok {
			groups[key] = &acc{count: 1, sum: m, min: m, max: m}
			continue
		}
		a.count++
		a.sum += m
		if m < a.min {
			a.min = m
		}
		if m > a.max {
			a.max = m
		}
	}

	out := make([]AggregateRow, 0, len(groups))
	for key, a := range groups {
		out = append(out, AggregateRow{
			Key:         key,
			Count:       a.count,
			MeanMinutes: a.sum / float64(a.count),
			MinMinutes:  a.min,
			MaxMinutes:  a.max,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MeanMinutes != out[j].MeanMinutes {
			return out[i].MeanMinutes < out[j].MeanMinutes
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// ByTechnician aggregates valid records per technician
func ByTechnician(records []Record) []AggregateRow {
	return Aggregate(records, func(r Record) string { return r.Technician })
}

// ByModel aggregates valid records per terminal model
func ByModel(records []Record) []AggregateRow {
	return Aggregate(records, func(r Record) string { return r.TerminalModel })
}
