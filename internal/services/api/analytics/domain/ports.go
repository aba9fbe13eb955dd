package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Technicians(ctx context.Context, in TechniciansInput) ([]AggRow, error)
	Models(ctx context.Context, in ModelsInput) ([]AggRow, error)
	Anomalies(ctx context.Context, in AnomaliesInput) ([]AnomalyRow, error)
}
