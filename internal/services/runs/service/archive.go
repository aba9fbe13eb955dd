package service

import (
	"context"

	"staymeter/internal/core/stay"
	"staymeter/internal/platform/logger"
)

// archive ships normalized records to ClickHouse. Best effort: a cold or
// absent archive never fails the run
func (s *Service) archive(ctx context.Context, runID string, recs []stay.Record) {
	if !s.cfg.Archive || s.ch == nil || len(recs) == 0 {
		return
	}

	rows := make([][]any, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []any{
			runID, rec.Row, rec.Technician, rec.TerminalModel, rec.Affiliate,
			rec.Arrival, rec.Departure, rec.Minutes(), rec.Valid,
		})
	}

	if err := s.ch.Insert(ctx, s.cfg.ArchiveTable, rows); err != nil {
		logger.C(ctx).Warn().
			Err(err).
			Str("table", s.cfg.ArchiveTable).
			Int("rows", len(rows)).
			Msg("record archive failed")
	}
}
