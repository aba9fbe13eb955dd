package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Execute(ctx context.Context, in ExecuteInput) (ExecuteResponse, error)
	Get(ctx context.Context, id string) (RunDetailResponse, error)
	List(ctx context.Context, limit int) ([]RunSummary, error)
}
