// Package domain holds DTOs for runs http and service contracts
package domain

import "staymeter/internal/core/stay"

// DatasetInput is the raw table payload, header plus text rows
type DatasetInput struct {
	Columns []string   `json:"columns" validate:"required,min=1"`
	Rows    [][]string `json:"rows"`
}

// Bindings maps dataset column names to engine roles.
// The three required roles mirror the engine contract; optional roles left
// blank disable the features that need them
type Bindings struct {
	Technician    string `json:"technician" validate:"required" example:"Technician"`
	Arrival       string `json:"arrival" validate:"required" example:"Arrival Time"`
	Departure     string `json:"departure" validate:"required" example:"Departure Time"`
	TerminalModel string `json:"terminal_model,omitempty" example:"Terminal Model"`
	Affiliate     string `json:"affiliate,omitempty" example:"Affiliate"`
	ReportDate    string `json:"report_date,omitempty" example:"Report Date"`
	FailureReason string `json:"failure_reason,omitempty" example:"Failure Reason"`
}

// EngineOptions are per-run overrides for the analysis engine
type EngineOptions struct {
	IQRMultiplier       float64 `json:"iqr_multiplier,omitempty" validate:"omitempty,gt=0" example:"1.5"`
	TopAffiliates       int     `json:"top_affiliates,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
	IncludeInvalidInIQR bool    `json:"include_invalid_in_iqr,omitempty"`
}

// ExecuteInput executes one analysis run over an inline dataset
type ExecuteInput struct {
	Source  string         `json:"source,omitempty" validate:"omitempty,max=255" example:"visits-2026-08.xlsx"`
	Dataset DatasetInput   `json:"dataset" validate:"required"`
	Columns Bindings       `json:"columns" validate:"required"`
	Options *EngineOptions `json:"options,omitempty"`
}

// RunSummary is the stored header of one run
type RunSummary struct {
	ID            string `json:"id" example:"0b3f4a1e-7b1d-4f7e-9f63-4f2a9a6d1c20"`
	Source        string `json:"source,omitempty" example:"visits-2026-08.xlsx"`
	CreatedAt     string `json:"created_at" example:"2026-08-23T10:00:00Z"`
	TotalRows     int    `json:"total_rows" example:"1200"`
	ValidRecords  int    `json:"valid_records" example:"1174"`
	ParseFailures int    `json:"parse_failures" example:"26"`
	Anomalies     int    `json:"anomalies" example:"14"`
	Status        string `json:"status" example:"ok"`
}

// ExecuteResponse pairs the stored summary with the full engine result
type ExecuteResponse struct {
	Run    RunSummary   `json:"run"`
	Result *stay.Result `json:"result"`
}

// AnomalyRow is one stored anomaly; bounds are zero for the negative class
type AnomalyRow struct {
	RowNum        int     `json:"row_num" example:"17"`
	Technician    string  `json:"technician" example:"J. Mariotti"`
	TerminalModel string  `json:"terminal_model,omitempty" example:"Ingenico 5000"`
	Affiliate     string  `json:"affiliate,omitempty" example:"North"`
	Class         string  `json:"class" example:"long"`
	Minutes       float64 `json:"minutes" example:"184.5"`
	Duration      string  `json:"duration" example:"3h 04m"`
	LowerMinutes  float64 `json:"lower_minutes,omitempty" example:"4.25"`
	UpperMinutes  float64 `json:"upper_minutes,omitempty" example:"96.75"`
}

// RunDetailResponse is the stored projection of a run
type RunDetailResponse struct {
	Run         RunSummary            `json:"run"`
	Technicians []stay.AggregateRow   `json:"technicians"`
	Models      []stay.AggregateRow   `json:"models"`
	Anomalies   []AnomalyRow          `json:"anomalies"`
	Affiliates  []stay.AffiliateEntry `json:"affiliates"`
}
