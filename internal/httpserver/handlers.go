package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"restoration-financials/internal/domain"
	"restoration-financials/internal/export"
)

type handlers struct {
	deps   Deps
	logger *log.Logger
}

func (h *handlers) metrics(c *gin.Context) {
	r, err := rangeFromQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	m, err := h.deps.ReportSvc.Metrics(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *handlers) metricsCSV(c *gin.Context) {
	r, err := rangeFromQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	m, err := h.deps.ReportSvc.Metrics(c.Request.Context(), r)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="financial-metrics.csv"`)
	c.Status(http.StatusOK)
	if err := export.WriteMetricsCSV(c.Writer, m); err != nil {
		h.logger.Printf("write metrics csv: %v", err)
	}
}

func (h *handlers) topJobs(c *gin.Context) {
	r, err := rangeFromQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	limit, err := limitFromQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	jobs, err := h.deps.ReportSvc.TopJobs(c.Request.Context(), r, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": jobs, "count": len(jobs)})
}

func (h *handlers) growth(c *gin.Context) {
	g, err := h.deps.ReportSvc.YearOverYearGrowth(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"yearOverYearGrowth": g})
}

func (h *handlers) listCustomers(c *gin.Context) {
	list, err := h.deps.CustomerSvc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": list, "count": len(list)})
}

func (h *handlers) customerDetail(c *gin.Context) {
	d, err := h.deps.CustomerSvc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *handlers) job(c *gin.Context) {
	j, err := h.deps.Jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *handlers) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidRange):
		badRequest(c, err)
	default:
		h.logger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
