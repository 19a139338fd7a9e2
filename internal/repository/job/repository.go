package job

import (
	"context"

	"restoration-financials/internal/domain"
)

// Repository fetches jobs.
type Repository interface {
	List(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Job, error)
}
