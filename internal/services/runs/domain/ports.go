package domain

import "context"

// RunnerPort executes one analysis pass end to end
type RunnerPort interface {
	Execute(ctx context.Context, in RunInput) (RunReport, error)
}

// ReaderPort reads stored runs for the API
type ReaderPort interface {
	Get(ctx context.Context, id string) (RunDetail, error)
	List(ctx context.Context, limit int) ([]Run, error)
}
