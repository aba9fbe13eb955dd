package stay

import (
	"math"
	"testing"
	"time"
)

func minuteRecord(tech string, minutes float64, valid bool) Record {
	return Record{
		Technician: tech,
		Duration:   time.Duration(minutes * float64(time.Minute)),
		Valid:      valid,
	}
}

func TestQuantile_LinearInterpolation(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, c := range cases {
		if got := quantile(xs, c.q); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("quantile(%v) = %v, want %v", c.q, got, c.want)
		}
	}

	// input must not be mutated
	if xs[0] != 1 || xs[3] != 4 {
		t.Fatalf("quantile mutated its input: %v", xs)
	}

	if got := quantile([]float64{42}, 0.5); got != 42 {
		t.Fatalf("single-element quantile = %v", got)
	}
}

func TestDetectAnomalies_TukeyFences(t *testing.T) {
	// population 10..17 plus one extreme on each side
	records := []Record{
		minuteRecord("lo", 1, true),
		minuteRecord("a", 10, true),
		minuteRecord("b", 11, true),
		minuteRecord("c", 12, true),
		minuteRecord("d", 13, true),
		minuteRecord("e", 14, true),
		minuteRecord("f", 15, true),
		minuteRecord("g", 16, true),
		minuteRecord("h", 17, true),
		minuteRecord("hi", 60, true),
	}

	out := DetectAnomalies(records, Options{})
	if len(out) != 2 {
		t.Fatalf("anomalies = %d, want 2: %+v", len(out), out)
	}
	byTech := map[string]Anomaly{}
	for _, a := range out {
		byTech[a.Record.Technician] = a
	}
	if byTech["lo"].Class != AnomalyShort {
		t.Fatalf("lo class = %q", byTech["lo"].Class)
	}
	if byTech["hi"].Class != AnomalyLong {
		t.Fatalf("hi class = %q", byTech["hi"].Class)
	}
	if byTech["hi"].LowerMinutes >= byTech["hi"].UpperMinutes {
		t.Fatalf("fences not ordered: %+v", byTech["hi"])
	}
}

func TestDetectAnomalies_MultiplierWidensFences(t *testing.T) {
	records := []Record{
		minuteRecord("a", 10, true),
		minuteRecord("b", 12, true),
		minuteRecord("c", 14, true),
		minuteRecord("d", 16, true),
		minuteRecord("e", 30, true),
	}

	strict := DetectAnomalies(records, Options{IQRMultiplier: 1.5})
	loose := DetectAnomalies(records, Options{IQRMultiplier: 10})
	if len(strict) == 0 {
		t.Fatalf("expected an outlier at k=1.5")
	}
	if len(loose) != 0 {
		t.Fatalf("expected no outliers at k=10, got %+v", loose)
	}
}

func TestDetectAnomalies_DegenerateSpread(t *testing.T) {
	// identical values collapse the fences onto the quartiles
	records := []Record{
		minuteRecord("a", 10, true),
		minuteRecord("b", 10, true),
		minuteRecord("c", 10, true),
		minuteRecord("off", 12, true),
	}

	out := DetectAnomalies(records, Options{})
	if len(out) != 1 {
		t.Fatalf("anomalies = %d, want 1", len(out))
	}
	if out[0].Record.Technician != "off" || out[0].Class != AnomalyLong {
		t.Fatalf("degenerate case mismatch: %+v", out[0])
	}
}

func TestDetectAnomalies_NegativeAlwaysReportedOnce(t *testing.T) {
	records := []Record{
		minuteRecord("a", 20, true),
		minuteRecord("b", 22, true),
		minuteRecord("c", 24, true),
		minuteRecord("neg", -30, false),
	}

	out := DetectAnomalies(records, Options{})
	count := 0
	for _, a := range out {
		if a.Record.Technician == "neg" {
			count++
			if a.Class != AnomalyNegative {
				t.Fatalf("negative record class = %q", a.Class)
			}
			if a.LowerMinutes != 0 || a.UpperMinutes != 0 {
				t.Fatalf("negative class must not carry fences: %+v", a)
			}
		}
	}
	if count != 1 {
		t.Fatalf("negative record reported %d times, want 1", count)
	}
}

func TestDetectAnomalies_IncludeInvalidInIQR(t *testing.T) {
	records := []Record{
		minuteRecord("a", 20, true),
		minuteRecord("b", 21, true),
		minuteRecord("c", 22, true),
		minuteRecord("neg", -100, false),
	}

	def := DetectAnomalies(records, Options{})
	incl := DetectAnomalies(records, Options{IncludeInvalidInIQR: true})

	// under both policies: no valid record is flagged and the negative row
	// reports exactly once as negative, never as short
	for name, out := range map[string][]Anomaly{"default": def, "include-invalid": incl} {
		if len(out) != 1 {
			t.Fatalf("%s: anomalies = %d, want 1: %+v", name, len(out), out)
		}
		if out[0].Class != AnomalyNegative || out[0].Record.Technician != "neg" {
			t.Fatalf("%s: mismatch: %+v", name, out[0])
		}
	}
}

func TestDetectAnomalies_EmptyPopulation(t *testing.T) {
	if out := DetectAnomalies(nil, Options{}); len(out) != 0 {
		t.Fatalf("expected no anomalies for no records")
	}

	// only invalid records: negatives still report, no fences computed
	out := DetectAnomalies([]Record{minuteRecord("neg", -5, false)}, Options{})
	if len(out) != 1 || out[0].Class != AnomalyNegative {
		t.Fatalf("invalid-only population mismatch: %+v", out)
	}
}
