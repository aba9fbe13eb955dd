package stay

import (
	"sort"

	"staymeter/internal/core/timeparse"
)

// unspecified is what blank affiliate and date cells render as in listings
const unspecified = "unspecified"

// AffiliateListing collects the distinct (affiliate, report date) pairs over
// the raw dataset in first-appearance order. Report dates are normalized to
// dd/mm/yyyy; blanks become "unspecified". Returns nil when either column
// is unbound or absent, which callers treat as "feature off"
func AffiliateListing(ds Dataset, cols Columns) []AffiliateEntry {
	if cols.Affiliate == "" || cols.ReportDate == "" {
		return nil
	}
	affIdx := ds.Index(cols.Affiliate)
	dateIdx := ds.Index(cols.ReportDate)
	if affIdx < 0 || dateIdx < 0 {
		return nil
	}

	out := []AffiliateEntry{}
	seen := make(map[AffiliateEntry]struct{})
	for i := range ds.Rows {
		aff := ds.Cell(i, affIdx)
		if aff == "" {
			aff = unspecified
		}
		date := unspecified
		if t, ok := timeparse.ReportDate(ds.Cell(i, dateIdx)); ok {
			date = t.Format("02/01/2006")
		}
		e := AffiliateEntry{Affiliate: aff, ReportDate: date}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// TopAffiliatesByFailure counts rows carrying a failure reason per affiliate
// over the raw dataset and returns the top n by count descending, affiliate
// ascending on ties. Returns nil when either column is unbound or absent
func TopAffiliatesByFailure(ds Dataset, cols Columns, n int) []AffiliateFailures {
	if cols.Affiliate == "" || cols.FailureReason == "" {
		return nil
	}
	affIdx := ds.Index(cols.Affiliate)
	failIdx := ds.Index(cols.FailureReason)
	if affIdx < 0 || failIdx < 0 {
		return nil
	}

	counts := make(map[string]int)
	for i := range ds.Rows {
		if ds.Cell(i, failIdx) == "" {
			continue
		}
		aff := ds.Cell(i, affIdx)
		if aff == "" {
			aff = unspecified
		}
		counts[aff]++
	}

	out := make([]AffiliateFailures, 0, len(counts))
	for aff, c := range counts {
		out = append(out, AffiliateFailures{Affiliate: aff, Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Affiliate < out[j].Affiliate
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
