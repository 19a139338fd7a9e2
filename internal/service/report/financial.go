package report

import (
	"cmp"
	"slices"
	"sort"
	"strconv"
	"time"

	"restoration-financials/internal/domain"
)

// DefaultTopJobs is the result size used when no positive limit is given.
const DefaultTopJobs = 10

// TypeBreakdown aggregates jobs of one type.
type TypeBreakdown struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// StatusBreakdown aggregates jobs of one status.
type StatusBreakdown struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// MonthComparison compares a month's invoiced revenue with the month before it.
type MonthComparison struct {
	ThisYear float64 `json:"thisYear"`
	LastYear float64 `json:"lastYear"`
	Change   float64 `json:"change"`
}

// Metrics is the financial summary of a job set.
type Metrics struct {
	TotalRevenue       float64                              `json:"totalRevenue"`
	PaidRevenue        float64                              `json:"paidRevenue"`
	InvoicedRevenue    float64                              `json:"invoicedRevenue"`
	PendingRevenue     float64                              `json:"pendingRevenue"`
	AverageJobValue    float64                              `json:"averageJobValue"`
	TotalProfit        float64                              `json:"totalProfit"`
	ProfitMargin       float64                              `json:"profitMargin"`
	JobsByType         map[domain.JobType]TypeBreakdown     `json:"jobsByType"`
	JobsByStatus       map[domain.JobStatus]StatusBreakdown `json:"jobsByStatus"`
	RevenueByMonth     map[string]float64                   `json:"revenueByMonth"`
	MonthlyComparisons map[string]MonthComparison           `json:"monthlyComparisons"`
}

func emptyMetrics() Metrics {
	return Metrics{
		JobsByType:         map[domain.JobType]TypeBreakdown{},
		JobsByStatus:       map[domain.JobStatus]StatusBreakdown{},
		RevenueByMonth:     map[string]float64{},
		MonthlyComparisons: map[string]MonthComparison{},
	}
}

// ReportDate is the date a job is reported under: the first of invoice date,
// completed date, scheduled start and creation date that is set.
func ReportDate(j domain.Job) (time.Time, bool) {
	for _, d := range []*time.Time{j.InvoiceDate, j.CompletedDate, j.ScheduledStartDate, j.CreatedAt} {
		if d != nil {
			return *d, true
		}
	}
	return time.Time{}, false
}

// JobsInDateRange keeps the jobs whose report date lies in [start, end].
// Jobs without any date are dropped.
func JobsInDateRange(jobs []domain.Job, start, end time.Time) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		d, ok := ReportDate(j)
		if !ok || d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FinancialMetrics summarises revenue, profit and their breakdowns in one
// pass. Jobs with a non-positive total add nothing but still count toward the
// average job value denominator.
func FinancialMetrics(jobs []domain.Job) Metrics {
	m := emptyMetrics()
	if len(jobs) == 0 {
		return m
	}

	for _, j := range jobs {
		total := j.Total
		if total <= 0 {
			continue
		}
		m.TotalRevenue += total

		sb := m.JobsByStatus[j.Status]
		sb.Count++
		sb.Revenue += total
		m.JobsByStatus[j.Status] = sb

		switch j.Status {
		case domain.StatusPaid:
			m.PaidRevenue += total
		case domain.StatusInvoiced:
			m.InvoicedRevenue += total
		case domain.StatusCancelled:
			// no bucket
		default:
			m.PendingRevenue += total
		}

		if j.Type != "" {
			profit := total - j.DirectCost()
			tb := m.JobsByType[j.Type]
			tb.Count++
			tb.Revenue += total
			tb.Profit += profit
			m.JobsByType[j.Type] = tb
			m.TotalProfit += profit
		}

		if j.InvoiceDate != nil {
			m.RevenueByMonth[j.InvoiceDate.UTC().Format("2006-01")] += total
		}
	}

	m.AverageJobValue = m.TotalRevenue / float64(len(jobs))
	if m.TotalRevenue > 0 {
		m.ProfitMargin = m.TotalProfit / m.TotalRevenue * 100
	}
	m.MonthlyComparisons = monthOverMonth(m.RevenueByMonth)
	return m
}

// monthOverMonth walks the YYYY-MM keys in order and compares each month with
// the one before it. Keys are abbreviated month names, so with more than a
// year of data the later month wins.
func monthOverMonth(byMonth map[string]float64) map[string]MonthComparison {
	out := map[string]MonthComparison{}
	months := make([]string, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Strings(months)

	for i := 1; i < len(months); i++ {
		cur, prev := byMonth[months[i]], byMonth[months[i-1]]
		change := 100.0
		if prev > 0 {
			change = (cur - prev) / prev * 100
		}
		out[monthName(months[i])] = MonthComparison{ThisYear: cur, LastYear: prev, Change: change}
	}
	return out
}

func monthName(key string) string {
	if len(key) != len("2006-01") {
		return key
	}
	n, err := strconv.Atoi(key[5:])
	if err != nil || n < 1 || n > 12 {
		return key
	}
	return time.Month(n).String()[:3]
}

// TopRevenueJobs returns up to limit jobs with a positive total, highest first.
func TopRevenueJobs(jobs []domain.Job, limit int) []domain.Job {
	if limit <= 0 {
		limit = DefaultTopJobs
	}
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.Total > 0 {
			out = append(out, j)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Job) int {
		return cmp.Compare(b.Total, a.Total)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// YearOverYearGrowth compares revenue invoiced in currentYear with the year
// before, as a percentage. It is 0 when the prior year has no revenue.
func YearOverYearGrowth(jobs []domain.Job, currentYear int) float64 {
	var current, previous float64
	for _, j := range jobs {
		if j.InvoiceDate == nil {
			continue
		}
		switch j.InvoiceDate.UTC().Year() {
		case currentYear:
			current += j.Total
		case currentYear - 1:
			previous += j.Total
		}
	}
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
