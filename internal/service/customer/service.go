package customer

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"restoration-financials/internal/domain"
	custrepo "restoration-financials/internal/repository/customer"
	jobrepo "restoration-financials/internal/repository/job"
	"restoration-financials/internal/service/report"
)

// Service backs the customer list and detail pages.
type Service struct {
	customers custrepo.Repository
	jobs      jobrepo.Repository
}

// New creates a Service over the customer and job stores.
func New(customers custrepo.Repository, jobs jobrepo.Repository) *Service {
	return &Service{customers: customers, jobs: jobs}
}

// Summary is one row of the customer list.
type Summary struct {
	domain.Customer
	JobCount     int     `json:"jobCount"`
	TotalRevenue float64 `json:"totalRevenue"`
	IsBusiness   bool    `json:"isBusiness"`
}

// Detail is a customer together with their jobs and the metrics over them.
type Detail struct {
	Customer domain.Customer `json:"customer"`
	Jobs     []domain.Job    `json:"jobs"`
	Metrics  report.Metrics  `json:"metrics"`
}

// List returns every customer sorted by name with their job count and revenue.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	type agg struct {
		count   int
		revenue float64
	}
	byCustomer := make(map[string]agg, len(customers))
	for _, j := range jobs {
		a := byCustomer[j.CustomerID]
		a.count++
		if j.Total > 0 {
			a.revenue += j.Total
		}
		byCustomer[j.CustomerID] = a
	}

	out := make([]Summary, 0, len(customers))
	for _, c := range customers {
		a := byCustomer[c.ID]
		out = append(out, Summary{
			Customer:     c,
			JobCount:     a.count,
			TotalRevenue: a.revenue,
			IsBusiness:   c.ContactPerson != "",
		})
	}
	slices.SortStableFunc(out, func(a, b Summary) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out, nil
}

// Detail loads one customer, their jobs newest first and the metrics over
// those jobs. Unknown ids return domain.ErrNotFound.
func (s *Service) Detail(ctx context.Context, id string) (*Detail, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.ListByCustomer(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("list jobs for %s: %w", c.ID, err)
	}
	slices.SortStableFunc(jobs, func(a, b domain.Job) int {
		da, okA := report.ReportDate(a)
		db, okB := report.ReportDate(b)
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return db.Compare(da)
	})
	return &Detail{Customer: *c, Jobs: jobs, Metrics: report.FinancialMetrics(jobs)}, nil
}
