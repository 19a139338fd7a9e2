package httpserver

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"restoration-financials/internal/domain"
	customersvc "restoration-financials/internal/service/customer"
	"restoration-financials/internal/service/report"
)

// ReportService answers the financial report queries.
type ReportService interface {
	Metrics(ctx context.Context, r report.Range) (report.Metrics, error)
	TopJobs(ctx context.Context, r report.Range, limit int) ([]domain.Job, error)
	YearOverYearGrowth(ctx context.Context) (float64, error)
}

// CustomerService backs the customer list and detail pages.
type CustomerService interface {
	List(ctx context.Context) ([]customersvc.Summary, error)
	Detail(ctx context.Context, id string) (*customersvc.Detail, error)
}

// JobFinder looks up a single job by id or job number.
type JobFinder interface {
	GetByID(ctx context.Context, id string) (*domain.Job, error)
}

// Deps carries the services the routes are served from. A nil Ready keeps
// /readyz unavailable.
type Deps struct {
	ReportSvc   ReportService
	CustomerSvc CustomerService
	Jobs        JobFinder
	Metrics     *Metrics
	Ready       func(ctx context.Context) error
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(deps.Metrics.Middleware())

	if len(deps.CORSOrigins) > 0 {
		corsCfg := cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}
		if err := corsCfg.Validate(); err != nil {
			return nil, fmt.Errorf("cors config: %w", err)
		}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(logger, deps.Ready))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	h := &handlers{deps: deps, logger: logger}
	api := router.Group("/api")
	{
		reports := api.Group("/reports")
		reports.GET("/metrics", h.metrics)
		reports.GET("/metrics.csv", h.metricsCSV)
		reports.GET("/top-jobs", h.topJobs)
		reports.GET("/growth", h.growth)

		api.GET("/customers", h.listCustomers)
		api.GET("/customers/:id", h.customerDetail)
		api.GET("/jobs/:id", h.job)
	}

	return router, nil
}
