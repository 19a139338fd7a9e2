package export

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"restoration-financials/internal/domain"
	"restoration-financials/internal/service/report"
)

// WriteMetricsCSV serialises a metrics summary as Section,Key,Count,Value rows.
// Map-backed sections are written in key order. Each month-over-month
// comparison becomes three rows keyed by short month name: this month, the
// previous month and the percentage change.
func WriteMetricsCSV(w io.Writer, m report.Metrics) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Section", "Key", "Count", "Value"}); err != nil {
		return err
	}
	records := [][]string{
		{"summary", "Total Revenue", "", formatMoney(m.TotalRevenue)},
		{"summary", "Paid Revenue", "", formatMoney(m.PaidRevenue)},
		{"summary", "Invoiced Revenue", "", formatMoney(m.InvoicedRevenue)},
		{"summary", "Pending Revenue", "", formatMoney(m.PendingRevenue)},
		{"summary", "Average Job Value", "", formatMoney(m.AverageJobValue)},
		{"summary", "Total Profit", "", formatMoney(m.TotalProfit)},
		{"summary", "Profit Margin %", "", formatMoney(m.ProfitMargin)},
	}
	for _, t := range sortedKeys(m.JobsByType) {
		b := m.JobsByType[t]
		records = append(records,
			[]string{"type", string(t), strconv.Itoa(b.Count), formatMoney(b.Revenue)},
			[]string{"type_profit", string(t), strconv.Itoa(b.Count), formatMoney(b.Profit)},
		)
	}
	for _, s := range sortedKeys(m.JobsByStatus) {
		b := m.JobsByStatus[s]
		records = append(records, []string{"status", string(s), strconv.Itoa(b.Count), formatMoney(b.Revenue)})
	}
	for _, month := range sortedKeys(m.RevenueByMonth) {
		records = append(records, []string{"month", month, "", formatMoney(m.RevenueByMonth[month])})
	}
	for _, month := range comparisonOrder(m.MonthlyComparisons) {
		cmp := m.MonthlyComparisons[month]
		records = append(records,
			[]string{"comparison_this", month, "", formatMoney(cmp.ThisYear)},
			[]string{"comparison_last", month, "", formatMoney(cmp.LastYear)},
			[]string{"comparison_change", month, "", formatMoney(cmp.Change)},
		)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteTopJobsCSV emits ranked jobs as CSV.
func WriteTopJobsCSV(w io.Writer, jobs []domain.Job) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"Rank", "Job Number", "Title", "Customer", "Type", "Status", "Total"}); err != nil {
		return err
	}
	for i, j := range jobs {
		if err := writer.Write([]string{
			strconv.Itoa(i + 1),
			j.JobNumber,
			j.Title,
			j.CustomerID,
			string(j.Type),
			string(j.Status),
			formatMoney(j.Total),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// comparisonOrder sorts short month names by calendar order.
func comparisonOrder(m map[string]report.MonthComparison) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return monthIndex(a) - monthIndex(b)
	})
	return keys
}

func monthIndex(short string) int {
	for m := time.January; m <= time.December; m++ {
		if m.String()[:3] == short {
			return int(m)
		}
	}
	return 13
}
