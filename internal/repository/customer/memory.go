package customer

import (
	"context"
	"io"
	"log"

	"restoration-financials/internal/domain"
)

type memoryRepo struct {
	items  []domain.Customer
	byID   map[string]int
	logger *log.Logger
}

// NewMemory returns a read-only Repository over an already loaded customer list.
func NewMemory(items []domain.Customer, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	byID := make(map[string]int, len(items))
	for i, c := range items {
		if _, dup := byID[c.ID]; dup {
			logger.Printf("customer repo: duplicate id=%s, keeping first", c.ID)
			continue
		}
		byID[c.ID] = i
	}
	return &memoryRepo{items: items, byID: byID, logger: logger}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := r.items[i]
	return &c, nil
}
