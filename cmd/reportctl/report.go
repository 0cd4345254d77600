package main

import (
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/crawl-report/internal/dashboard"
	"github.com/DjordjeVuckovic/crawl-report/pkg/pagination"
	"github.com/DjordjeVuckovic/crawl-report/pkg/stringsutil"
	"github.com/DjordjeVuckovic/crawl-report/pkg/tableutil"
	"github.com/spf13/cobra"
)

const titleWidth = 60

var (
	metricsPeriod  string
	searchSites    string
	searchKeyword  string
	searchPage     int
	searchPageSize int
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print dashboard metrics",
	Long: `metrics prints the collected document counts for today, the last 3
and 7 days and overall, each as "documents (attachments)".

With --period it lists the documents collected in that window instead.

Examples:
  reportctl metrics
  reportctl metrics --period 3days`,
	RunE: runMetrics,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search collected documents",
	Long: `search filters documents by site codes and a keyword matched against
title and summary. Without sites and keyword nothing is returned.

Examples:
  reportctl search --sites moleg,assembly --keyword 세법
  reportctl search --keyword tax --page 2 --page-size 20`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(searchCmd)

	metricsCmd.Flags().StringVarP(&metricsPeriod, "period", "p", "", "List documents of a window: today, 3days or 7days")

	searchCmd.Flags().StringVar(&searchSites, "sites", "", "Comma separated site codes")
	searchCmd.Flags().StringVarP(&searchKeyword, "keyword", "k", "", "Keyword")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "Page number")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", pagination.PageDefaultSize, "Page size (10-100)")
}

func runMetrics(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if metricsPeriod != "" {
		rows := a.Dashboard.WindowedDocuments(cmd.Context(), dashboard.ParsePeriod(metricsPeriod))
		if jsonOutput {
			return printJSON(out, rows)
		}
		tbl := tableutil.New("site", "page", "title", "registered", "collected")
		for _, r := range rows {
			tbl.Append(r.SiteLabel, r.PageLabel, tableutil.Truncate(r.Title, titleWidth), r.RegistrationDate, r.CollectionDate)
		}
		return tbl.Render(out)
	}

	m := a.Dashboard.DashboardMetrics(cmd.Context())
	if jsonOutput {
		return printJSON(out, m)
	}
	tbl := tableutil.New("window", "documents (attachments)")
	tbl.Append("today", m.TodayCollect)
	tbl.Append("3 days", m.ThreeDaysCollect)
	tbl.Append("7 days", m.SevenDaysCollect)
	tbl.Append("total", m.TotalCollect)
	tbl.Append("errors (latest day)", strconv.FormatInt(m.ErrorCount, 10))
	return tbl.Render(out)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	res, err := a.Search.Search(cmd.Context(), stringsutil.SplitCSV(searchSites), searchKeyword, searchPage, searchPageSize)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, res)
	}
	tbl := tableutil.New("site", "page", "seq", "title", "registered")
	for _, r := range res.Items {
		tbl.Append(r.SiteLabel, r.PageLabel, r.SequenceID, tableutil.Truncate(r.Title, titleWidth), r.RegistrationDate)
	}
	if err := tbl.Render(out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\npage %d of %d, %d results\n", res.Page, res.TotalPages, res.Total)
	return err
}
