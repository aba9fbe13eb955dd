// Package service executes and reads analysis runs
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"staymeter/internal/core/stay"
	"staymeter/internal/modkit/repokit"
	perr "staymeter/internal/platform/errors"
	"staymeter/internal/platform/store"
	"staymeter/internal/services/runs/domain"
	"staymeter/internal/services/runs/repo"
)

// Config tunes engine defaults, the archive seam and read limits
type Config struct {
	Engine       stay.Options
	Archive      bool
	ArchiveTable string
	ListLimit    int
}

// Service implements domain.RunnerPort and domain.ReaderPort
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	reader repo.Storage
	ch     store.Clickhouse
	cfg    Config
}

// New constructs a runs service. The ClickHouse seam may be nil; archiving
// is skipped without it
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], chSeam store.Clickhouse, cfg Config) *Service {
	if db == nil {
		panic("runs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("runs.Service requires a non nil Storage binder")
	}
	if cfg.ArchiveTable == "" {
		cfg.ArchiveTable = "service_records"
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 100
	}
	return &Service{db: db, binder: binder, reader: binder.Bind(db), ch: chSeam, cfg: cfg}
}

// Execute implements domain.RunnerPort: analyze, persist in one Tx, archive
func (s *Service) Execute(ctx context.Context, in domain.RunInput) (domain.RunReport, error) {
	opts := s.cfg.Engine
	if in.IQRMultiplier > 0 {
		opts.IQRMultiplier = in.IQRMultiplier
	}
	if in.TopAffiliates > 0 {
		opts.TopAffiliates = in.TopAffiliates
	}
	if in.IncludeInvalidInIQR {
		opts.IncludeInvalidInIQR = true
	}

	res, err := stay.Analyze(in.Dataset, in.Columns, opts)
	if err != nil {
		var se *stay.SchemaError
		if errors.As(err, &se) {
			return domain.RunReport{}, perr.Schemaf(
				"dataset missing required columns: %s", strings.Join(se.Missing, ", "))
		}
		if errors.Is(err, stay.ErrEmptyResult) {
			return domain.RunReport{}, perr.InvalidArgf("no analyzable records in dataset")
		}
		return domain.RunReport{}, err
	}

	run := domain.Run{
		ID:            uuid.NewString(),
		Source:        in.Source,
		CreatedAt:     time.Now().UTC(),
		TotalRows:     res.TotalRows,
		ValidRecords:  res.ValidRecords,
		ParseFailures: res.ParseFailures,
		Anomalies:     len(res.Anomalies),
		Status:        statusOf(res),
	}

	err = store.RunInRun(ctx, s.db, run.ID, func(ctx context.Context, q store.RowQuerier) error {
		r := s.binder.Bind(q)
		if err := r.InsertRun(ctx, run); err != nil {
			return err
		}
		if err := r.InsertTechnicianStats(ctx, run.ID, res.Technicians); err != nil {
			return err
		}
		if err := r.InsertModelStats(ctx, run.ID, res.Models); err != nil {
			return err
		}
		if err := r.InsertAnomalies(ctx, run.ID, flattenAnomalies(res.Anomalies)); err != nil {
			return err
		}
		return r.InsertAffiliates(ctx, run.ID, res.Affiliates)
	})
	if err != nil {
		return domain.RunReport{}, err
	}

	s.archive(ctx, run.ID, res.Records)

	return domain.RunReport{Run: run, Result: res}, nil
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, id string) (domain.RunDetail, error) {
	run, err := s.reader.GetRun(ctx, id)
	if err != nil {
		return domain.RunDetail{}, err
	}
	techs, err := s.reader.TechnicianStats(ctx, id)
	if err != nil {
		return domain.RunDetail{}, err
	}
	models, err := s.reader.ModelStats(ctx, id)
	if err != nil {
		return domain.RunDetail{}, err
	}
	anomalies, err := s.reader.Anomalies(ctx, id)
	if err != nil {
		return domain.RunDetail{}, err
	}
	affiliates, err := s.reader.Affiliates(ctx, id)
	if err != nil {
		return domain.RunDetail{}, err
	}
	return domain.RunDetail{
		Run:         run,
		Technicians: techs,
		Models:      models,
		Anomalies:   anomalies,
		Affiliates:  affiliates,
	}, nil
}

// List implements domain.ReaderPort
func (s *Service) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 || limit > s.cfg.ListLimit {
		limit = s.cfg.ListLimit
	}
	return s.reader.ListRuns(ctx, limit)
}

func statusOf(res *stay.Result) string {
	if res.ValidRecords == 0 {
		return "empty"
	}
	return "ok"
}

func flattenAnomalies(xs []stay.Anomaly) []domain.AnomalyRow {
	out := make([]domain.AnomalyRow, 0, len(xs))
	for _, a := range xs {
		out = append(out, domain.AnomalyRow{
			RowNum:        a.Record.Row,
			Technician:    a.Record.Technician,
			TerminalModel: a.Record.TerminalModel,
			Affiliate:     a.Record.Affiliate,
			Class:         string(a.Class),
			Minutes:       a.Record.Minutes(),
			LowerMinutes:  a.LowerMinutes,
			UpperMinutes:  a.UpperMinutes,
		})
	}
	return out
}
