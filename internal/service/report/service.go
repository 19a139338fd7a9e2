package report

import (
	"context"
	"fmt"
	"time"

	"restoration-financials/internal/domain"
)

// JobLister is the slice of the job store the reports read from.
type JobLister interface {
	List(ctx context.Context) ([]domain.Job, error)
}

// Range bounds a report. A zero From or To leaves that side open; a fully
// zero Range covers every job, including those without any date.
type Range struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether neither bound is set.
func (r Range) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Validate rejects ranges that end before they start.
func (r Range) Validate() error {
	if !r.From.IsZero() && !r.To.IsZero() && r.From.After(r.To) {
		return fmt.Errorf("%w: from %s is after to %s", domain.ErrInvalidRange, r.From.Format(time.RFC3339), r.To.Format(time.RFC3339))
	}
	return nil
}

func (r Range) bounds() (time.Time, time.Time) {
	from, to := r.From, r.To
	if to.IsZero() {
		to = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	}
	return from, to
}

func (r Range) key() string {
	return formatBound(r.From) + ":" + formatBound(r.To)
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// Service answers the financial reports over the loaded job set.
type Service struct {
	jobs  JobLister
	cache *Cache
	now   func() time.Time
}

// New wires the job store with an optional cache. A nil now uses time.Now.
func New(jobs JobLister, cache *Cache, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{jobs: jobs, cache: cache, now: now}
}

// JobsInDateRange returns the jobs reported inside r.
func (s *Service) JobsInDateRange(ctx context.Context, r Range) ([]domain.Job, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	if r.IsZero() {
		return jobs, nil
	}
	from, to := r.bounds()
	return JobsInDateRange(jobs, from, to), nil
}

// Metrics computes FinancialMetrics for the jobs in r, using the cache when
// one is configured.
func (s *Service) Metrics(ctx context.Context, r Range) (Metrics, error) {
	if err := r.Validate(); err != nil {
		return Metrics{}, err
	}
	loader := func(ctx context.Context) (any, error) {
		jobs, err := s.JobsInDateRange(ctx, r)
		if err != nil {
			return nil, err
		}
		return FinancialMetrics(jobs), nil
	}

	key, err := s.cache.BuildKey(ctx, "reports", "metrics", r.key())
	if err != nil {
		s.cache.logf("cache: build key: %v, computing directly", err)
		jobs, err := s.JobsInDateRange(ctx, r)
		if err != nil {
			return Metrics{}, err
		}
		return FinancialMetrics(jobs), nil
	}
	var m Metrics
	if err := s.cache.FetchJSON(ctx, key, &m, loader); err != nil {
		return Metrics{}, err
	}
	return m, nil
}

// TopJobs ranks the jobs in r by total.
func (s *Service) TopJobs(ctx context.Context, r Range, limit int) ([]domain.Job, error) {
	jobs, err := s.JobsInDateRange(ctx, r)
	if err != nil {
		return nil, err
	}
	return TopRevenueJobs(jobs, limit), nil
}

// YearOverYearGrowth compares this calendar year's invoiced revenue with last
// year's across the whole dataset.
func (s *Service) YearOverYearGrowth(ctx context.Context) (float64, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list jobs: %w", err)
	}
	return YearOverYearGrowth(jobs, s.now().Year()), nil
}

// Invalidate drops cached reports, e.g. after a new dataset was loaded.
func (s *Service) Invalidate(ctx context.Context) error {
	return s.cache.Bump(ctx)
}
