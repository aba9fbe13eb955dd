// Package repo provides postgres access for analytics
package repo

import (
	"context"
	"time"

	"staymeter/internal/modkit/repokit"
)

// Repo is the minimal persistence surface for analytics
type Repo interface {
	AggTechnicians(ctx context.Context, start, end, technician string) ([]AggRow, error)
	AggModels(ctx context.Context, start, end, model string) ([]AggRow, error)
	Anomalies(ctx context.Context, start, end, class, technician string, limit int) ([]AnomalyRow, error)
}

// AggRow is one cross-run aggregation bucket
type AggRow struct {
	Key         string
	Count       int64
	MeanMinutes float64
	MinMinutes  float64
	MaxMinutes  float64
}

// AnomalyRow is one stored anomaly with its run context
type AnomalyRow struct {
	RunID         string
	ObservedAt    time.Time
	RowNum        int
	Technician    string
	TerminalModel string
	Affiliate     string
	Class         string
	Minutes       float64
	LowerMinutes  float64
	UpperMinutes  float64
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) AggTechnicians(ctx context.Context, start, end, technician string) ([]AggRow, error) {
	return r.agg(ctx, "run_technician_stats", start, end, technician)
}

func (r *queries) AggModels(ctx context.Context, start, end, model string) ([]AggRow, error) {
	return r.agg(ctx, "run_model_stats", start, end, model)
}

// agg merges per-run stats into one window-wide bucket per key.
// Means are recombined weighted by count; table is one of the two fixed
// stat tables, never user input
func (r *queries) agg(ctx context.Context, table, start, end, key string) ([]AggRow, error) {
	sql := `
select
	s.grp_key,
	sum(s.cnt) as cnt,
	sum(s.cnt * s.mean_minutes) / nullif(sum(s.cnt), 0) as mean_minutes,
	min(s.min_minutes) as min_minutes,
	max(s.max_minutes) as max_minutes
from ` + table + ` s
join runs r on r.id = s.run_id
where r.created_at::date between $1 and $2
and ($3 = '' or s.grp_key = $3)
group by s.grp_key
order by mean_minutes asc, s.grp_key asc
`
	rows, err := r.q.Query(ctx, sql, start, end, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AggRow
	for rows.Next() {
		var rr AggRow
		if err := rows.Scan(&rr.Key, &rr.Count, &rr.MeanMinutes, &rr.MinMinutes, &rr.MaxMinutes); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Anomalies(
	ctx context.Context,
	start, end, class, technician string,
	limit int,
) ([]AnomalyRow, error) {
	const sql = `
select
	a.run_id::text, r.created_at, a.row_num,
	a.technician, a.terminal_model, a.affiliate, a.class,
	a.minutes, a.lower_minutes, a.upper_minutes
from run_anomalies a
join runs r on r.id = a.run_id
where r.created_at::date between $1 and $2
and ($3 = '' or a.class = $3)
and ($4 = '' or a.technician = $4)
order by r.created_at desc, a.run_id, a.row_num asc
limit $5
`
	rows, err := r.q.Query(ctx, sql, start, end, class, technician, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnomalyRow
	for rows.Next() {
		var a AnomalyRow
		if err := rows.Scan(
			&a.RunID, &a.ObservedAt, &a.RowNum,
			&a.Technician, &a.TerminalModel, &a.Affiliate, &a.Class,
			&a.Minutes, &a.LowerMinutes, &a.UpperMinutes,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
