// Package service contains analytics workflows
package service

import (
	"context"
	"time"

	"staymeter/internal/modkit/repokit"
	ptime "staymeter/internal/platform/time"
	"staymeter/internal/services/api/analytics/domain"
	"staymeter/internal/services/api/analytics/repo"
)

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analytics service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs an analytics service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("analytics.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("analytics.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Technicians returns cross-run stay aggregates by technician
func (s *Svc) Technicians(ctx context.Context, in domain.TechniciansInput) ([]domain.AggRow, error) {
	rows, err := s.Repo.AggTechnicians(ctx, in.Range.Start, in.Range.End, in.Technician)
	if err != nil {
		return nil, err
	}
	return mapAgg(rows), nil
}

// Models returns cross-run stay aggregates by terminal model
func (s *Svc) Models(ctx context.Context, in domain.ModelsInput) ([]domain.AggRow, error) {
	rows, err := s.Repo.AggModels(ctx, in.Range.Start, in.Range.End, in.Model)
	if err != nil {
		return nil, err
	}
	return mapAgg(rows), nil
}

// Anomalies returns stored anomalies across runs, newest first
func (s *Svc) Anomalies(ctx context.Context, in domain.AnomaliesInput) ([]domain.AnomalyRow, error) {
	limit := in.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.Repo.Anomalies(ctx, in.Range.Start, in.Range.End, in.Class, in.Technician, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AnomalyRow, 0, len(rows))
	for _, a := range rows {
		out = append(out, domain.AnomalyRow{
			RunID:         a.RunID,
			ObservedAt:    a.ObservedAt.UTC().Format(time.RFC3339),
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
	return out, nil
}

func mapAgg(rows []repo.AggRow) []domain.AggRow {
	out := make([]domain.AggRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.AggRow{
			Key:         r.Key,
			Count:       r.Count,
			MeanMinutes: r.MeanMinutes,
			MinMinutes:  r.MinMinutes,
			MaxMinutes:  r.MaxMinutes,
		})
	}
	return out
}
