package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"restoration-financials/internal/config"
	"restoration-financials/internal/domain"
	"restoration-financials/internal/export"
	"restoration-financials/internal/fixtures"
	jobrepo "restoration-financials/internal/repository/job"
	"restoration-financials/internal/service/report"
)

type reportOutput struct {
	From               *time.Time     `json:"from,omitempty"`
	To                 *time.Time     `json:"to,omitempty"`
	Metrics            report.Metrics `json:"metrics"`
	TopJobs            []domain.Job   `json:"topJobs"`
	YearOverYearGrowth float64        `json:"yearOverYearGrowth"`
}

// ReportCmd prints financial metrics for a fixture directory.
func ReportCmd(cfg config.Config, now func() time.Time) *cobra.Command {
	var (
		dataDir  string
		from, to string
		top      int
		format   string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print financial metrics, top jobs and growth for the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := report.ParseRange(from, to)
			if err != nil {
				return err
			}
			if format != "text" && format != "json" && format != "csv" {
				return fmt.Errorf("unknown --format %q: want text, json or csv", format)
			}

			ctx := cmd.Context()
			ds, err := fixtures.Load(ctx, dataDir)
			if err != nil {
				return fmt.Errorf("load dataset: %w", err)
			}
			svc := report.New(jobrepo.NewMemory(ds.Jobs, nil), nil, now)

			out := reportOutput{}
			if !r.From.IsZero() {
				out.From = &r.From
			}
			if !r.To.IsZero() {
				out.To = &r.To
			}
			if out.Metrics, err = svc.Metrics(ctx, r); err != nil {
				return err
			}
			if out.TopJobs, err = svc.TopJobs(ctx, r, top); err != nil {
				return err
			}
			if out.YearOverYearGrowth, err = svc.YearOverYearGrowth(ctx); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			case "csv":
				if err := export.WriteMetricsCSV(w, out.Metrics); err != nil {
					return err
				}
				fmt.Fprintln(w)
				return export.WriteTopJobsCSV(w, out.TopJobs)
			default:
				return writeText(w, out)
			}
		},
	}
	cmd.Flags().StringVar(&dataDir, "data", cfg.DataDir, "directory holding the fixture files")
	cmd.Flags().StringVar(&from, "from", "", "start date, YYYY-MM-DD or RFC3339")
	cmd.Flags().StringVar(&to, "to", "", "end date, inclusive")
	cmd.Flags().IntVar(&top, "top", report.DefaultTopJobs, "number of top jobs to list")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or csv")
	return cmd
}

func writeText(w io.Writer, out reportOutput) error {
	p := message.NewPrinter(language.English)
	m := out.Metrics
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p.Fprintf(tw, "Total revenue\t$%.2f\n", m.TotalRevenue)
	p.Fprintf(tw, "Paid\t$%.2f\n", m.PaidRevenue)
	p.Fprintf(tw, "Invoiced\t$%.2f\n", m.InvoicedRevenue)
	p.Fprintf(tw, "Pending\t$%.2f\n", m.PendingRevenue)
	p.Fprintf(tw, "Average job value\t$%.2f\n", m.AverageJobValue)
	p.Fprintf(tw, "Total profit\t$%.2f\n", m.TotalProfit)
	p.Fprintf(tw, "Profit margin\t%.1f%%\n", m.ProfitMargin)
	p.Fprintf(tw, "Year over year\t%.1f%%\n", out.YearOverYearGrowth)

	if len(m.JobsByType) > 0 {
		fmt.Fprintln(tw, "\nType\tJobs\tRevenue\tProfit")
		for _, t := range sortedKeys(m.JobsByType) {
			b := m.JobsByType[t]
			p.Fprintf(tw, "%s\t%d\t$%.2f\t$%.2f\n", t, b.Count, b.Revenue, b.Profit)
		}
	}
	if len(m.JobsByStatus) > 0 {
		fmt.Fprintln(tw, "\nStatus\tJobs\tRevenue")
		for _, s := range sortedKeys(m.JobsByStatus) {
			b := m.JobsByStatus[s]
			p.Fprintf(tw, "%s\t%d\t$%.2f\n", s, b.Count, b.Revenue)
		}
	}
	if len(m.RevenueByMonth) > 0 {
		fmt.Fprintln(tw, "\nMonth\tInvoiced")
		for _, month := range sortedKeys(m.RevenueByMonth) {
			p.Fprintf(tw, "%s\t$%.2f\n", month, m.RevenueByMonth[month])
		}
	}
	if len(out.TopJobs) > 0 {
		fmt.Fprintln(tw, "\n#\tJob\tTitle\tStatus\tTotal")
		for i, j := range out.TopJobs {
			p.Fprintf(tw, "%d\t%s\t%s\t%s\t$%.2f\n", i+1, j.JobNumber, j.Title, j.Status, j.Total)
		}
	}
	return tw.Flush()
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
