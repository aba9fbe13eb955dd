// Package repo provides postgres persistence for analysis runs
package repo

import (
	"context"
	"fmt"
	"strings"

	"staymeter/internal/core/stay"
	"staymeter/internal/modkit/repokit"
	perr "staymeter/internal/platform/errors"
	"staymeter/internal/services/runs/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the runs repository
type Storage interface {
	InsertRun(ctx context.Context, r domain.Run) error
	InsertTechnicianStats(ctx context.Context, runID string, rows []stay.AggregateRow) error
	InsertModelStats(ctx context.Context, runID string, rows []stay.AggregateRow) error
	InsertAnomalies(ctx context.Context, runID string, rows []domain.AnomalyRow) error
	InsertAffiliates(ctx context.Context, runID string, rows []stay.AffiliateEntry) error

	GetRun(ctx context.Context, id string) (domain.Run, error)
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
	TechnicianStats(ctx context.Context, runID string) ([]stay.AggregateRow, error)
	ModelStats(ctx context.Context, runID string) ([]stay.AggregateRow, error)
	Anomalies(ctx context.Context, runID string) ([]domain.AnomalyRow, error)
	Affiliates(ctx context.Context, runID string) ([]stay.AffiliateEntry, error)
}

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, r domain.Run) error {
	const sql = `INSERT INTO runs
		(id, source, created_at, total_rows, valid_records, parse_failures, anomalies, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := s.q.Exec(ctx, sql,
		r.ID, r.Source, r.CreatedAt, r.TotalRows, r.ValidRecords, r.ParseFailures, r.Anomalies, r.Status)
	return err
}

// InsertTechnicianStats implements Storage
func (s *pg) InsertTechnicianStats(ctx context.Context, runID string, rows []stay.AggregateRow) error {
	return s.insertAgg(ctx, "run_technician_stats", runID, rows)
}

// InsertModelStats implements Storage
func (s *pg) InsertModelStats(ctx context.Context, runID string, rows []stay.AggregateRow) error {
	return s.insertAgg(ctx, "run_model_stats", runID, rows)
}

// insertAgg writes one aggregation table in a single multi-row statement.
// table is one of the two fixed stat table names, never user input
func (s *pg) insertAgg(ctx context.Context, table, runID string, rows []stay.AggregateRow) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO ` + table +
		` (run_id, grp_key, cnt, mean_minutes, min_minutes, max_minutes) VALUES `)

	args := make([]any, 0, len(rows)*6)
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*6 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5)
		args = append(args, runID, r.Key, r.Count, r.MeanMinutes, r.MinMinutes, r.MaxMinutes)
	}
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// InsertAnomalies implements Storage
func (s *pg) InsertAnomalies(ctx context.Context, runID string, rows []domain.AnomalyRow) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO run_anomalies
		(run_id, row_num, technician, terminal_model, affiliate, class,
		minutes, lower_minutes, upper_minutes) VALUES `)

	args := make([]any, 0, len(rows)*9)
	for i, a := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*9 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		args = append(args,
			runID, a.RowNum, a.Technician, a.TerminalModel, a.Affiliate, a.Class,
			a.Minutes, a.LowerMinutes, a.UpperMinutes)
	}
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// InsertAffiliates implements Storage
func (s *pg) InsertAffiliates(ctx context.Context, runID string, rows []stay.AffiliateEntry) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO run_affiliates (run_id, affiliate, report_date) VALUES `)

	args := make([]any, 0, len(rows)*3)
	for i, e := range rows {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*3 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d)", base, base+1, base+2)
		args = append(args, runID, e.Affiliate, e.ReportDate)
	}
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// GetRun implements Storage
func (s *pg) GetRun(ctx context.Context, id string) (domain.Run, error) {
	const sql = `
SELECT id::text, source, created_at, total_rows, valid_records, parse_failures, anomalies, status
FROM runs
WHERE id = $1::uuid
`
	rows, err := s.q.Query(ctx, sql, id)
	if err != nil {
		return domain.Run{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Run{}, err
		}
		return domain.Run{}, perr.NotFoundf("run %s not found", id)
	}
	var r domain.Run
	if err := rows.Scan(
		&r.ID, &r.Source, &r.CreatedAt,
		&r.TotalRows, &r.ValidRecords, &r.ParseFailures, &r.Anomalies, &r.Status,
	); err != nil {
		return domain.Run{}, err
	}
	return r, rows.Err()
}

// ListRuns implements Storage
func (s *pg) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	const sql = `
SELECT id::text, source, created_at, total_rows, valid_records, parse_failures, anomalies, status
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT $1
`
	rows, err := s.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Run, 0, limit)
	for rows.Next() {
		var r domain.Run
		if err := rows.Scan(
			&r.ID, &r.Source, &r.CreatedAt,
			&r.TotalRows, &r.ValidRecords, &r.ParseFailures, &r.Anomalies, &r.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TechnicianStats implements Storage
func (s *pg) TechnicianStats(ctx context.Context, runID string) ([]stay.AggregateRow, error) {
	return s.readAgg(ctx, "run_technician_stats", runID)
}

// ModelStats implements Storage
func (s *pg) ModelStats(ctx context.Context, runID string) ([]stay.AggregateRow, error) {
	return s.readAgg(ctx, "run_model_stats", runID)
}

func (s *pg) readAgg(ctx context.Context, table, runID string) ([]stay.AggregateRow, error) {
	// mean ascending, name breaks ties; same order the engine emits
	sql := `
SELECT grp_key, cnt, mean_minutes, min_minutes, max_minutes
FROM ` + table + `
WHERE run_id = $1::uuid
ORDER BY mean_minutes ASC, grp_key ASC
`
	rows, err := s.q.Query(ctx, sql, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []stay.AggregateRow{}
	for rows.Next() {
		var r stay.AggregateRow
		if err := rows.Scan(&r.Key, &r.Count, &r.MeanMinutes, &r.MinMinutes, &r.MaxMinutes); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Anomalies implements Storage
func (s *pg) Anomalies(ctx context.Context, runID string) ([]domain.AnomalyRow, error) {
	const sql = `
SELECT row_num, technician, terminal_model, affiliate, class, minutes, lower_minutes, upper_minutes
FROM run_anomalies
WHERE run_id = $1::uuid
ORDER BY row_num ASC
`
	rows, err := s.q.Query(ctx, sql, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.AnomalyRow{}
	for rows.Next() {
		var a domain.AnomalyRow
		if err := rows.Scan(
			&a.RowNum, &a.Technician, &a.TerminalModel, &a.Affiliate, &a.Class,
			&a.Minutes, &a.LowerMinutes, &a.UpperMinutes,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Affiliates implements Storage
func (s *pg) Affiliates(ctx context.Context, runID string) ([]stay.AffiliateEntry, error) {
	// seq preserves first-appearance order from the source dataset
	const sql = `
SELECT affiliate, report_date
FROM run_affiliates
WHERE run_id = $1::uuid
ORDER BY seq ASC
`
	rows, err := s.q.Query(ctx, sql, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []stay.AffiliateEntry{}
	for rows.Next() {
		var e stay.AffiliateEntry
		if err := rows.Scan(&e.Affiliate, &e.ReportDate); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
