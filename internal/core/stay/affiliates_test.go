package stay

import "testing"

func affiliateDataset(rows [][]string) Dataset {
	return Dataset{
		Columns: []string{"Technician", "Arrival Time", "Departure Time", "Affiliate", "Report Date", "Failure Reason"},
		Rows:    rows,
	}
}

func affiliateColumns() Columns {
	c := visitColumns()
	c.Affiliate = "Affiliate"
	c.ReportDate = "Report Date"
	c.FailureReason = "Failure Reason"
	return c
}

func TestAffiliateListing_DistinctPairsFirstAppearance(t *testing.T) {
	ds := affiliateDataset([][]string{
		{"A", "09:00 AM", "09:30 AM", "North", "05/11/2024", ""},
		{"B", "10:00 AM", "10:30 AM", "South", "2024-11-06", ""},
		{"C", "11:00 AM", "11:30 AM", "North", "05/11/2024", ""}, // duplicate pair
		{"D", "12:00 PM", "12:30 PM", "North", "07/11/2024", ""}, // same affiliate, new date
	})

	got := AffiliateListing(ds, affiliateColumns())
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3: %+v", len(got), got)
	}
	want := []AffiliateEntry{
		{Affiliate: "North", ReportDate: "05/11/2024"},
		{Affiliate: "South", ReportDate: "06/11/2024"},
		{Affiliate: "North", ReportDate: "07/11/2024"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAffiliateListing_BlanksRenderUnspecified(t *testing.T) {
	ds := affiliateDataset([][]string{
		{"A", "09:00 AM", "09:30 AM", "", "", ""},
	})

	got := AffiliateListing(ds, affiliateColumns())
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	if got[0].Affiliate != "unspecified" || got[0].ReportDate != "unspecified" {
		t.Fatalf("blank cells mismatch: %+v", got[0])
	}
}

func TestAffiliateListing_AbsentColumnsVsEmptyRows(t *testing.T) {
	// unbound columns: feature off, nil
	ds := visitDataset([][]string{{"A", "09:00 AM", "09:30 AM"}})
	if got := AffiliateListing(ds, visitColumns()); got != nil {
		t.Fatalf("unbound columns should yield nil, got %+v", got)
	}

	// bound columns over zero rows: present but empty
	empty := affiliateDataset(nil)
	got := AffiliateListing(empty, affiliateColumns())
	if got == nil || len(got) != 0 {
		t.Fatalf("bound columns over no rows should yield empty non-nil, got %#v", got)
	}

	// bound but missing from the dataset: feature off
	cols := visitColumns()
	cols.Affiliate = "Affiliate"
	cols.ReportDate = "Report Date"
	if got := AffiliateListing(ds, cols); got != nil {
		t.Fatalf("missing dataset columns should yield nil, got %+v", got)
	}
}

func TestTopAffiliatesByFailure(t *testing.T) {
	ds := affiliateDataset([][]string{
		{"A", "09:00 AM", "09:30 AM", "North", "", "jam"},
		{"B", "10:00 AM", "10:30 AM", "North", "", "jam"},
		{"C", "11:00 AM", "11:30 AM", "South", "", "power"},
		{"D", "12:00 PM", "12:30 PM", "East", "", ""},     // no failure: not counted
		{"E", "01:00 PM", "01:30 PM", "", "", "misprint"}, // blank affiliate buckets as unspecified
	})

	got := TopAffiliatesByFailure(ds, affiliateColumns(), 10)
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3: %+v", len(got), got)
	}
	if got[0].Affiliate != "North" || got[0].Count != 2 {
		t.Fatalf("top row mismatch: %+v", got[0])
	}
	// tie at 1 resolves by name ascending
	if got[1].Affiliate != "South" || got[2].Affiliate != "unspecified" {
		t.Fatalf("tie order mismatch: %+v", got)
	}

	// cap applies
	if capped := TopAffiliatesByFailure(ds, affiliateColumns(), 1); len(capped) != 1 || capped[0].Affiliate != "North" {
		t.Fatalf("cap mismatch: %+v", capped)
	}

	// unbound failure column: feature off
	cols := affiliateColumns()
	cols.FailureReason = ""
	if got := TopAffiliatesByFailure(ds, cols, 10); got != nil {
		t.Fatalf("unbound failure column should yield nil, got %+v", got)
	}
}
