package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/crawl-report/pkg/tableutil"
	"github.com/spf13/cobra"
)

var (
	syncSource   string
	catalogSites bool
)

var syncCatalogCmd = &cobra.Command{
	Use:   "sync-catalog",
	Short: "Replace the catalog with the site description",
	Long: `sync-catalog loads the YAML site description and replaces the
catalog table in one transaction. Running it twice with the same file
leaves the same catalog.

Examples:
  # Sync from CATALOG_SOURCE
  reportctl sync-catalog

  # Sync from another file
  reportctl sync-catalog --source config/site_config.yaml`,
	RunE: runSyncCatalog,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the stored catalog",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(syncCatalogCmd)
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().BoolVar(&catalogSites, "sites", false, "List distinct sites only")
	syncCatalogCmd.Flags().StringVarP(&syncSource, "source", "s", "", "Site description file (defaults to CATALOG_SOURCE)")
}

func runSyncCatalog(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	source := syncSource
	if source == "" {
		source = a.Settings.CatalogSource
	}

	res, err := a.Syncer.SyncFile(cmd.Context(), source)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "synced %d sites, %d pages from %s (version %s)\n", res.Sites, res.Pages, source, res.Version)
	return err
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := a.Registry.Reload(cmd.Context())
	if err != nil {
		return err
	}
	if catalogSites {
		sites := snap.Sites()
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), sites)
		}
		tbl := tableutil.New("code", "name")
		for _, s := range sites {
			tbl.Append(s.Code, s.Name)
		}
		return tbl.Render(cmd.OutOrStdout())
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), snap.Entries)
	}

	tbl := tableutil.New("site", "page", "site name", "page name", "detail url")
	for _, e := range snap.Entries {
		tbl.Append(e.SiteKey, e.PageKey, e.SiteLabel, e.PageLabel, e.DetailURL)
	}
	return tbl.Render(cmd.OutOrStdout())
}
