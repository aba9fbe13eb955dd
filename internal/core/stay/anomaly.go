package stay

import "sort"

// quantile computes q in [0,1] over xs with linear interpolation between
// closest ranks. xs must be non-empty and is not mutated
func quantile(xs []float64, q float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// DetectAnomalies flags records using Tukey fences over stay minutes plus a
// separate always-reported class for negative durations.
//
// The fence population is valid records only unless IncludeInvalidInIQR is
// set. A degenerate spread (IQR zero, fewer than four points) is not an
// error; the fences collapse and everything off the quartiles is flagged.
// Negative records never double-report as short
func DetectAnomalies(records []Record, opts Options) []Anomaly {
	opts = opts.withDefaults()

	var population []float64
	for _, r := range records {
		if r.Valid || opts.IncludeInvalidInIQR {
			population = append(population, r.Minutes())
		}
	}

	var lower, upper float64
	haveFences := len(population) > 0
	if haveFences {
		q1 := quantile(population, 0.25)
		q3 := quantile(population, 0.75)
		iqr := q3 - q1
		lower = q1 - opts.IQRMultiplier*iqr
		upper = q3 + opts.IQRMultiplier*iqr
	}

	var out []Anomaly
	for _, r := range records {
		if !r.Valid {
			out = append(out, Anomaly{Record: r, Class: AnomalyNegative})
			continue
		}
		if !haveFences {
			continue
		}
		m := r.Minutes()
		switch {
		case m < lower:
			out = append(out, Anomaly{Record: r, Class: AnomalyShort, LowerMinutes: lower, UpperMinutes: upper})
		case m > upper:
			out = append(out, Anomaly{Record: r, Class: AnomalyLong, LowerMinutes: lower, UpperMinutes: upper})
		}
	}
	return out
}
