// Package stay computes technician stay-time analytics over tabular visit
// data: duration normalization, per-key aggregation, anomaly detection and
// affiliate reporting, assembled into a single immutable Result.
package stay

import (
	"fmt"
	"strings"
	"time"
)

// Dataset is rows by named columns with all cells as text.
// Loaders (spreadsheet ingest, API payloads) produce it; the engine never
// mutates it
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Index returns the position of a column by exact name, -1 when absent
func (d Dataset) Index(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell at row/col, "" when the row is ragged
func (d Dataset) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(d.Rows) {
		return ""
	}
	r := d.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// Columns binds dataset column names to their roles.
// Technician, Arrival and Departure are required; the rest are optional and
// absent bindings disable the features that need them
type Columns struct {
	Technician    string `json:"technician"`
	Arrival       string `json:"arrival"`
	Departure     string `json:"departure"`
	TerminalModel string `json:"terminal_model,omitempty"`
	Affiliate     string `json:"affiliate,omitempty"`
	ReportDate    string `json:"report_date,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// SchemaError reports every missing required column at once
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ErrEmptyResult is returned by Analyze only when Options.ErrorOnEmpty is set
// and no record survives normalization
var ErrEmptyResult = fmt.Errorf("no analyzable records in dataset")

// Options tunes the engine. The zero value is usable; defaults are applied
// by Analyze
type Options struct {
	// IQRMultiplier is Tukey's k; 0 means the default 1.5
	IQRMultiplier float64

	// IncludeInvalidInIQR feeds negative durations into the fence
	// computation instead of the default valid-only population
	IncludeInvalidInIQR bool

	// ErrorOnEmpty makes Analyze fail with ErrEmptyResult instead of
	// returning empty tables
	ErrorOnEmpty bool

	// TopAffiliates caps the failure-frequency listing; 0 means 10
	TopAffiliates int
}

func (o Options) withDefaults() Options {
	if o.IQRMultiplier <= 0 {
		o.IQRMultiplier = 1.5
	}
	if o.TopAffiliates <= 0 {
		o.TopAffiliates = 10
	}
	return o
}

// Record is one normalized visit
type Record struct {
	Row           int           `json:"row"`
	Technician    string        `json:"technician"`
	TerminalModel string        `json:"terminal_model,omitempty"`
	Affiliate     string        `json:"affiliate,omitempty"`
	Arrival       time.Time     `json:"arrival"`
	Departure     time.Time     `json:"departure"`
	Duration      time.Duration `json:"duration"`
	Valid         bool          `json:"valid"`
}

// Minutes returns the signed duration in fractional minutes
func (r Record) Minutes() float64 { return r.Duration.Minutes() }

// AggregateRow is one group in a per-key aggregation, durations in minutes
type AggregateRow struct {
	Key         string  `json:"key"`
	Count       int     `json:"count"`
	MeanMinutes float64 `json:"mean_minutes"`
	MinMinutes  float64 `json:"min_minutes"`
	MaxMinutes  float64 `json:"max_minutes"`
}

// AnomalyClass tags why a record was flagged
type AnomalyClass string

const (
	// AnomalyNegative marks departure-before-arrival rows; always reported
	AnomalyNegative AnomalyClass = "negative"

	// AnomalyShort marks stays below the lower Tukey fence
	AnomalyShort AnomalyClass = "short"

	// AnomalyLong marks stays above the upper Tukey fence
	AnomalyLong AnomalyClass = "long"
)

// Anomaly is one flagged record with the fences that applied.
// Bounds are zero for the negative class
type Anomaly struct {
	Record       Record       `json:"record"`
	Class        AnomalyClass `json:"class"`
	LowerMinutes float64      `json:"lower_minutes,omitempty"`
	UpperMinutes float64      `json:"upper_minutes,omitempty"`
}

// AffiliateEntry is one distinct (affiliate, report date) pair over the raw
// dataset; blanks render as "unspecified"
type AffiliateEntry struct {
	Affiliate  string `json:"affiliate"`
	ReportDate string `json:"report_date"`
}

// AffiliateFailures counts rows with a failure reason per affiliate
type AffiliateFailures struct {
	Affiliate string `json:"affiliate"`
	Count     int    `json:"count"`
}

// Result is the full output of one analysis pass.
// Tables are empty (never nil) when no record survives; the optional
// affiliate listings are nil when their columns are unbound
type Result struct {
	Records     []Record       `json:"records"`
	Technicians []AggregateRow `json:"technicians"`
	Models      []AggregateRow `json:"models"`
	Anomalies   []Anomaly      `json:"anomalies"`

	Affiliates    []AffiliateEntry    `json:"affiliates,omitempty"`
	TopAffiliates []AffiliateFailures `json:"top_affiliates,omitempty"`

	TotalRows     int `json:"total_rows"`
	ValidRecords  int `json:"valid_records"`
	ParseFailures int `json:"parse_failures"`
}
