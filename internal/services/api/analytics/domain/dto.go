// Package domain holds DTOs for analytics http and service contracts
package domain

// Query window and filters kept small and explicit
// Dates are ISO8601 days, inclusive on both ends

// DateRange bounds queries by run creation date
type DateRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// TechniciansInput aggregates stay times by technician across runs
type TechniciansInput struct {
	Range DateRange `json:"range"`
	// optional filters
	Technician string `json:"technician,omitempty" validate:"omitempty,min=1,max=200" example:"J. Mariotti"`
}

// ModelsInput aggregates stay times by terminal model across runs
type ModelsInput struct {
	Range DateRange `json:"range"`
	Model string    `json:"model,omitempty" validate:"omitempty,min=1,max=200" example:"Ingenico 5000"`
}

// AggRow is one cross-run aggregation bucket, durations in minutes
type AggRow struct {
	Key         string  `json:"key" example:"J. Mariotti"`
	Count       int64   `json:"count" example:"87"`
	MeanMinutes float64 `json:"mean_minutes" example:"42.5"`
	MinMinutes  float64 `json:"min_minutes" example:"5"`
	MaxMinutes  float64 `json:"max_minutes" example:"184.5"`
}

// AnomaliesInput lists stored anomalies across runs
type AnomaliesInput struct {
	Range DateRange `json:"range"`
	// optional filters
	Class      string `json:"class,omitempty" validate:"omitempty,oneof=negative short long" example:"long"`
	Technician string `json:"technician,omitempty" validate:"omitempty,min=1,max=200" example:"J. Mariotti"`
	Limit      int    `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"100"`
}

// AnomalyRow is one stored anomaly with its run context
type AnomalyRow struct {
	RunID         string  `json:"run_id" example:"0b3f4a1e-7b1d-4f7e-9f63-4f2a9a6d1c20"`
	ObservedAt    string  `json:"observed_at" example:"2026-08-23T10:00:00Z"`
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
