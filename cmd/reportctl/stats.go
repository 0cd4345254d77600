package main

import (
	"strconv"

	"github.com/DjordjeVuckovic/crawl-report/internal/app"
	"github.com/DjordjeVuckovic/crawl-report/pkg/tableutil"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:       "stats [overview|sites|files|detail|period]",
	Short:     "Print collection statistics",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"overview", "sites", "files", "detail", "period"},
	RunE:      runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	kind := "overview"
	if len(args) == 1 {
		kind = args[0]
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	tbl, data := statsTable(cmd, a, kind)
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), data)
	}
	return tbl.Render(cmd.OutOrStdout())
}

func statsTable(cmd *cobra.Command, a *app.App, kind string) (*tableutil.Table, interface{}) {
	ctx := cmd.Context()
	itoa := func(n int64) string { return strconv.FormatInt(n, 10) }

	switch kind {
	case "sites":
		rows := a.Statistics.SiteCounts(ctx)
		tbl := tableutil.New("site", "documents")
		for _, r := range rows {
			tbl.Append(r.Site, itoa(r.Count))
		}
		return tbl, rows
	case "files":
		rows := a.Statistics.SiteFileCounts(ctx)
		tbl := tableutil.New("site", "attachments")
		for _, r := range rows {
			tbl.Append(r.Site, itoa(r.FileCount))
		}
		return tbl, rows
	case "detail":
		rows := a.Statistics.DetailCounts(ctx)
		tbl := tableutil.New("site", "page", "documents", "attachments")
		for _, r := range rows {
			tbl.Append(r.Site, r.Page, itoa(r.Posts), itoa(r.Files))
		}
		return tbl, rows
	case "period":
		p := a.Statistics.CollectionPeriod(ctx)
		deref := func(s *string) string {
			if s == nil {
				return "-"
			}
			return *s
		}
		tbl := tableutil.New("first", "last")
		tbl.Append(deref(p.FirstDate), deref(p.LastDate))
		return tbl, p
	default:
		o := a.Statistics.Overview(ctx)
		tbl := tableutil.New("sites", "pages", "documents", "attachments")
		tbl.Append(itoa(o.TotalSites), itoa(o.TotalPages), itoa(o.TotalPosts), itoa(o.TotalAttachments))
		return tbl, o
	}
}
