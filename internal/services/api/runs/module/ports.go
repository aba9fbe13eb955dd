package module

import (
	"context"

	"staymeter/internal/services/api/runs/domain"
	runssvc "staymeter/internal/services/api/runs/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptRunsPort exposes service methods as module ports for cross-module usage
type adaptRunsPort struct{ svc runssvc.Service }

// Execute runs a full analysis pass over an inline dataset
func (a adaptRunsPort) Execute(ctx context.Context, in domain.ExecuteInput) (domain.ExecuteResponse, error) {
	return a.svc.Execute(ctx, in)
}

// Get returns the stored projection of one run
func (a adaptRunsPort) Get(ctx context.Context, id string) (domain.RunDetailResponse, error) {
	return a.svc.Get(ctx, id)
}

// List returns recent runs, newest first
func (a adaptRunsPort) List(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	return a.svc.List(ctx, limit)
}
