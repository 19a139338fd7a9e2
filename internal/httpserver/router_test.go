package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"restoration-financials/internal/domain"
	customersvc "restoration-financials/internal/service/customer"
	"restoration-financials/internal/service/report"
)

type stubReportSvc struct {
	metrics   report.Metrics
	jobs      []domain.Job
	growth    float64
	err       error
	lastRange report.Range
	lastLimit int
}

func (s *stubReportSvc) Metrics(_ context.Context, r report.Range) (report.Metrics, error) {
	s.lastRange = r
	return s.metrics, s.err
}

func (s *stubReportSvc) TopJobs(_ context.Context, r report.Range, limit int) ([]domain.Job, error) {
	s.lastRange = r
	s.lastLimit = limit
	return s.jobs, s.err
}

func (s *stubReportSvc) YearOverYearGrowth(_ context.Context) (float64, error) {
	return s.growth, s.err
}

type stubCustomerSvc struct {
	list   []customersvc.Summary
	detail *customersvc.Detail
	err    error
}

func (s *stubCustomerSvc) List(_ context.Context) ([]customersvc.Summary, error) {
	return s.list, s.err
}

func (s *stubCustomerSvc) Detail(_ context.Context, id string) (*customersvc.Detail, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.detail == nil || s.detail.Customer.ID != id {
		return nil, domain.ErrNotFound
	}
	return s.detail, nil
}

type stubJobs map[string]domain.Job

func (s stubJobs) GetByID(_ context.Context, id string) (*domain.Job, error) {
	j, ok := s[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &j, nil
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.ReportSvc == nil {
		deps.ReportSvc = &stubReportSvc{metrics: report.FinancialMetrics(nil)}
	}
	if deps.CustomerSvc == nil {
		deps.CustomerSvc = &stubCustomerSvc{}
	}
	if deps.Jobs == nil {
		deps.Jobs = stubJobs{}
	}
	router, err := buildRouter(logDiscard(), deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t, Deps{})
	if rec := do(router, http.MethodGet, "/healthz"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/readyz"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without dataset, got %d", rec.Code)
	}

	router = newTestRouter(t, Deps{Ready: func(context.Context) error { return nil }})
	if rec := do(router, http.MethodGet, "/readyz"); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	router = newTestRouter(t, Deps{Ready: func(context.Context) error {
		return errors.New("dial tcp 10.0.0.7:6379: connect: connection refused")
	}})
	rec := do(router, http.MethodGet, "/readyz")
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), "cache not reachable") {
		t.Fatalf("unexpected readyz response %d %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "10.0.0.7") {
		t.Fatalf("readyz leaked connection details: %s", rec.Body.String())
	}
}

func TestMetricsHandler(t *testing.T) {
	svc := &stubReportSvc{metrics: report.FinancialMetrics([]domain.Job{
		{Status: domain.StatusPaid, Type: domain.JobTypeWater, Total: 1000, LaborCost: 200, MaterialsCost: 100, EquipmentCost: 50},
	})}
	router := newTestRouter(t, Deps{ReportSvc: svc})

	rec := do(router, http.MethodGet, "/api/reports/metrics?from=2024-01-01&to=2024-12-31")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var body report.Metrics
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.TotalProfit != 650 || body.ProfitMargin != 65 {
		t.Fatalf("unexpected metrics %+v", body)
	}
	wantTo := time.Date(2024, time.December, 31, 23, 59, 59, 999999999, time.UTC)
	if !svc.lastRange.To.Equal(wantTo) {
		t.Fatalf("expected inclusive end date, got %s", svc.lastRange.To)
	}
	if !strings.Contains(rec.Body.String(), `"jobsByType":{"WATER"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMetricsHandler_BadRange(t *testing.T) {
	router := newTestRouter(t, Deps{})

	for _, target := range []string{
		"/api/reports/metrics?from=not-a-date",
		"/api/reports/metrics?from=2024-02-01&to=2024-01-01",
		"/api/reports/top-jobs?limit=ten",
	} {
		if rec := do(router, http.MethodGet, target); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestMetricsCSVHandler(t *testing.T) {
	router := newTestRouter(t, Deps{})

	rec := do(router, http.MethodGet, "/api/reports/metrics.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "Section,Key,Count,Value\n") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestTopJobsHandler(t *testing.T) {
	svc := &stubReportSvc{jobs: []domain.Job{{ID: "j2", Total: 200}, {ID: "j4", Total: 100}}}
	router := newTestRouter(t, Deps{ReportSvc: svc})

	rec := do(router, http.MethodGet, "/api/reports/top-jobs?limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastLimit != 2 {
		t.Fatalf("expected limit 2, got %d", svc.lastLimit)
	}
	if !svc.lastRange.IsZero() {
		t.Fatalf("expected open range, got %+v", svc.lastRange)
	}
	if !strings.Contains(rec.Body.String(), `"count":2`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	do(router, http.MethodGet, "/api/reports/top-jobs")
	if svc.lastLimit != report.DefaultTopJobs {
		t.Fatalf("expected default limit, got %d", svc.lastLimit)
	}
}

func TestGrowthHandler(t *testing.T) {
	router := newTestRouter(t, Deps{ReportSvc: &stubReportSvc{growth: 12.5}})

	rec := do(router, http.MethodGet, "/api/reports/growth")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"yearOverYearGrowth":12.5`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestServiceError(t *testing.T) {
	router := newTestRouter(t, Deps{ReportSvc: &stubReportSvc{err: errors.New("boom")}})

	rec := do(router, http.MethodGet, "/api/reports/growth")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
}

func TestCustomerHandlers(t *testing.T) {
	detail := &customersvc.Detail{
		Customer: domain.Customer{ID: "customer-1", Name: "Riverside Mall"},
		Jobs:     []domain.Job{},
		Metrics:  report.FinancialMetrics(nil),
	}
	svc := &stubCustomerSvc{
		list:   []customersvc.Summary{{Customer: detail.Customer, JobCount: 0}},
		detail: detail,
	}
	router := newTestRouter(t, Deps{CustomerSvc: svc})

	rec := do(router, http.MethodGet, "/api/customers")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"name":"Riverside Mall"`) {
		t.Fatalf("unexpected list response %d %s", rec.Code, rec.Body.String())
	}

	rec = do(router, http.MethodGet, "/api/customers/customer-1")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"jobs":[]`) {
		t.Fatalf("unexpected detail response %d %s", rec.Code, rec.Body.String())
	}

	if rec := do(router, http.MethodGet, "/api/customers/customer-9"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestJobHandler(t *testing.T) {
	router := newTestRouter(t, Deps{Jobs: stubJobs{"j1": {ID: "j1", JobNumber: "J-0301-0001"}}})

	rec := do(router, http.MethodGet, "/api/jobs/j1")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"jobNumber":"J-0301-0001"`) {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(router, http.MethodGet, "/api/jobs/missing"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t, Deps{CORSOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allow-origin header, got %q", got)
	}

	gin.SetMode(gin.TestMode)
	if _, err := buildRouter(logDiscard(), Deps{CORSOrigins: []string{"localhost"}}); err == nil {
		t.Fatalf("expected invalid origin to be rejected")
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	m := NewMetrics()
	m.ObserveDataset(25, 300)
	router := newTestRouter(t, Deps{Metrics: m})

	do(router, http.MethodGet, "/healthz")
	rec := do(router, http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`finance_http_requests_total{code="200",route="/healthz"} 1`,
		`finance_dataset_records{kind="jobs"} 300`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in metrics output:\n%s", want, body)
		}
	}

	router = newTestRouter(t, Deps{})
	if rec := do(router, http.MethodGet, "/metrics"); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without metrics, got %d", rec.Code)
	}
}
