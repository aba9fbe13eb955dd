// Package domain defines the core types and ports for analysis runs
package domain

import (
	"time"

	"staymeter/internal/core/stay"
)

// RunInput carries one dataset through a full analysis pass
type RunInput struct {
	Dataset stay.Dataset
	Columns stay.Columns

	// Source is a free-form origin label, e.g. the uploaded filename
	Source string

	// per-run overrides; zero values fall back to module defaults
	IQRMultiplier       float64
	TopAffiliates       int
	IncludeInvalidInIQR bool
}

// Run is the stored summary of one analysis pass
type Run struct {
	ID            string
	Source        string
	CreatedAt     time.Time
	TotalRows     int
	ValidRecords  int
	ParseFailures int
	Anomalies     int
	Status        string // "ok" | "empty"
}

// RunReport pairs the stored summary with the full engine result
type RunReport struct {
	Run    Run
	Result *stay.Result
}

// RunDetail is the read-side projection of a stored run
type RunDetail struct {
	Run         Run
	Technicians []stay.AggregateRow
	Models      []stay.AggregateRow
	Anomalies   []AnomalyRow
	Affiliates  []stay.AffiliateEntry
}

// AnomalyRow is one persisted anomaly, flattened for storage.
// Bounds are zero for the negative class
type AnomalyRow struct {
	RowNum        int
	Technician    string
	TerminalModel string
	Affiliate     string
	Class         string
	Minutes       float64
	LowerMinutes  float64
	UpperMinutes  float64
}
