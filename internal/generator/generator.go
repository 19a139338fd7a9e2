package generator

import (
	"io"
	"log"
	"math/rand/v2"
	"time"

	"restoration-financials/internal/domain"
)

// Generator fabricates customers and jobs from a Config. Randomness and the
// clock are injected so a fixed seed reproduces the same dataset.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	ids    idReader
	now    func() time.Time
	logger *log.Logger
}

// New returns a Generator. A nil now defaults to time.Now and a nil logger
// discards output.
func New(cfg Config, rng *rand.Rand, now func() time.Time, logger *log.Logger) *Generator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{cfg: cfg, rng: rng, ids: idReader{rng: rng}, now: now, logger: logger}
}

// NewSeeded builds a Generator over a PCG source seeded with seed.
func NewSeeded(cfg Config, seed uint64, now func() time.Time, logger *log.Logger) *Generator {
	return New(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now, logger)
}

// ReportYear is the calendar year a run covers: the previous year during the
// first half of the current year, otherwise the current one.
func (g *Generator) ReportYear() int {
	now := g.now()
	if now.Month() < time.July {
		return now.Year() - 1
	}
	return now.Year()
}

// Generate builds the full dataset: CustomerCount customers and one job per
// slot of the seasonal month table, all assigned to the configured technician.
// Without customers no jobs are generated.
func (g *Generator) Generate() domain.Dataset {
	g.logger.Printf("generating %d customers", g.cfg.CustomerCount)
	customers := make([]domain.Customer, 0, max(g.cfg.CustomerCount, 0))
	for i := 1; i <= g.cfg.CustomerCount; i++ {
		customers = append(customers, g.GenerateCustomer(i))
	}

	if len(customers) == 0 {
		g.logger.Printf("no customers configured, skipping jobs")
		return domain.Dataset{Customers: customers, Jobs: []domain.Job{}}
	}

	year := g.ReportYear()
	g.logger.Printf("generating %d jobs across 12 months of %d", g.cfg.TotalJobs(), year)

	jobs := make([]domain.Job, 0, g.cfg.TotalJobs())
	index := 1
	for month := 0; month < 12; month++ {
		count := g.cfg.JobsPerMonth[month]
		g.logger.Printf("month %02d: %d jobs", month+1, count)
		for i := 0; i < count; i++ {
			jobs = append(jobs, g.GenerateJob(index, year, month, customers, g.cfg.TechnicianID))
			index++
		}
	}

	return domain.Dataset{Customers: customers, Jobs: jobs}
}
