package job

import (
	"context"
	"io"
	"log"

	"restoration-financials/internal/domain"
)

type memoryRepo struct {
	items      []domain.Job
	byID       map[string]int
	byCustomer map[string][]int
	logger     *log.Logger
}

// NewMemory returns a read-only Repository over an already loaded job list.
// Lookups by id also accept the human-readable job number.
func NewMemory(items []domain.Job, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &memoryRepo{
		items:      items,
		byID:       make(map[string]int, len(items)*2),
		byCustomer: make(map[string][]int),
		logger:     logger,
	}
	for i, j := range items {
		if _, dup := r.byID[j.ID]; dup {
			logger.Printf("job repo: duplicate id=%s, keeping first", j.ID)
			continue
		}
		r.byID[j.ID] = i
		if j.JobNumber != "" {
			if _, taken := r.byID[j.JobNumber]; !taken {
				r.byID[j.JobNumber] = i
			}
		}
		r.byCustomer[j.CustomerID] = append(r.byCustomer[j.CustomerID], i)
	}
	return r
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Job, error) {
	out := make([]domain.Job, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	j := r.items[i]
	return &j, nil
}

func (r *memoryRepo) ListByCustomer(_ context.Context, customerID string) ([]domain.Job, error) {
	idx := r.byCustomer[customerID]
	out := make([]domain.Job, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.items[i])
	}
	return out, nil
}
