package module

import (
	"context"

	"staymeter/internal/services/api/analytics/domain"
	ansvc "staymeter/internal/services/api/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalyticsPort struct{ svc ansvc.Service }

// Technicians returns cross-run stay aggregates by technician
func (a adaptAnalyticsPort) Technicians(ctx context.Context, in domain.TechniciansInput) ([]domain.AggRow, error) {
	return a.svc.Technicians(ctx, in)
}

// Models returns cross-run stay aggregates by terminal model
func (a adaptAnalyticsPort) Models(ctx context.Context, in domain.ModelsInput) ([]domain.AggRow, error) {
	return a.svc.Models(ctx, in)
}

// Anomalies returns stored anomalies across runs, newest first
func (a adaptAnalyticsPort) Anomalies(ctx context.Context, in domain.AnomaliesInput) ([]domain.AnomalyRow, error) {
	return a.svc.Anomalies(ctx, in)
}
