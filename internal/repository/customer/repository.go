package customer

import (
	"context"

	"restoration-financials/internal/domain"
)

// Repository fetches customers.
type Repository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}
