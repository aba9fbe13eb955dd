// Package service adapts the worker runs ports to API DTOs
package service

import (
	"context"
	"time"

	"staymeter/internal/core/stay"
	ptime "staymeter/internal/platform/time"
	"staymeter/internal/services/api/runs/domain"
	runsdom "staymeter/internal/services/runs/domain"
)

// Service defines the runs API service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the runs API service over the worker ports
type Svc struct {
	runner runsdom.RunnerPort
	reader runsdom.ReaderPort
}

// New constructs a runs API service
func New(runner runsdom.RunnerPort, reader runsdom.ReaderPort) *Svc {
	if runner == nil {
		panic("runs API service requires a non nil RunnerPort")
	}
	if reader == nil {
		panic("runs API service requires a non nil ReaderPort")
	}
	return &Svc{runner: runner, reader: reader}
}

// Execute runs a full analysis pass over the posted dataset
func (s *Svc) Execute(ctx context.Context, in domain.ExecuteInput) (domain.ExecuteResponse, error) {
	wi := runsdom.RunInput{
		Dataset: stay.Dataset{Columns: in.Dataset.Columns, Rows: in.Dataset.Rows},
		Columns: stay.Columns{
			Technician:    in.Columns.Technician,
			Arrival:       in.Columns.Arrival,
			Departure:     in.Columns.Departure,
			TerminalModel: in.Columns.TerminalModel,
			Affiliate:     in.Columns.Affiliate,
			ReportDate:    in.Columns.ReportDate,
			FailureReason: in.Columns.FailureReason,
		},
		Source: in.Source,
	}
	if in.Options != nil {
		wi.IQRMultiplier = in.Options.IQRMultiplier
		wi.TopAffiliates = in.Options.TopAffiliates
		wi.IncludeInvalidInIQR = in.Options.IncludeInvalidInIQR
	}

	rep, err := s.runner.Execute(ctx, wi)
	if err != nil {
		return domain.ExecuteResponse{}, err
	}
	return domain.ExecuteResponse{Run: summaryOf(rep.Run), Result: rep.Result}, nil
}

// Get returns the stored projection of one run
func (s *Svc) Get(ctx context.Context, id string) (domain.RunDetailResponse, error) {
	d, err := s.reader.Get(ctx, id)
	if err != nil {
		return domain.RunDetailResponse{}, err
	}

	anomalies := make([]domain.AnomalyRow, 0, len(d.Anomalies))
	for _, a := range d.Anomalies {
		anomalies = append(anomalies, domain.AnomalyRow{
			RowNum:        a.RowNum,
			Technician:    a.Technician,
			TerminalModel: a.TerminalModel,
			Affiliate:     a.Affiliate,
			Class:         a.Class,
			Minutes:       a.Minutes,
			Duration:      ptime.FormatHM(time.Duration(a.Minutes * float64(time.Minute))),
			LowerMinutes:  a.LowerMinutes,
			UpperMinutes:  a.UpperMinutes,
		})
	}

	return domain.RunDetailResponse{
		Run:         summaryOf(d.Run),
		Technicians: d.Technicians,
		Models:      d.Models,
		Anomalies:   anomalies,
		Affiliates:  d.Affiliates,
	}, nil
}

// List returns recent runs, newest first
func (s *Svc) List(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	runs, err := s.reader.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RunSummary, 0, len(runs))
	for _, r := range runs {
		out = append(out, summaryOf(r))
	}
	return out, nil
}

func summaryOf(r runsdom.Run) domain.RunSummary {
	return domain.RunSummary{
		ID:            r.ID,
		Source:        r.Source,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		TotalRows:     r.TotalRows,
		ValidRecords:  r.ValidRecords,
		ParseFailures: r.ParseFailures,
		Anomalies:     r.Anomalies,
		Status:        r.Status,
	}
}
