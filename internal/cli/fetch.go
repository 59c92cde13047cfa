package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ychekhovska/jphstats/internal/scrape"
)

var (
	fetchBaseURL     string
	fetchOutDir      string
	fetchConcurrency int
	fetchRPS         float64
	fetchTimeout     time.Duration
	fetchNoRobots    bool
	fetchNoCache     bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the suicide statistics publications",
	Long: `Fetch crawls the NPA publication index, follows the per-year pages and
downloads every linked data file (PDF, CSV, XLSX). Files already present
in the output directory are skipped, so re-runs only fetch what changed.

Example:
  jphstats fetch
  jphstats fetch --out data_raw/raw_downloads --concurrency 2`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchBaseURL, "base-url", "", "publication index URL (default from config)")
	fetchCmd.Flags().StringVar(&fetchOutDir, "out", "", "download directory (default from config)")
	fetchCmd.Flags().IntVar(&fetchConcurrency, "concurrency", 0, "concurrent downloads (default from config)")
	fetchCmd.Flags().Float64Var(&fetchRPS, "rps", 0, "requests per second per host (default from config)")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 10*time.Minute, "overall crawl timeout")
	fetchCmd.Flags().BoolVar(&fetchNoRobots, "no-robots", false, "ignore robots.txt (not recommended)")
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "disable the listing-page cache")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if fetchBaseURL != "" {
		cfg.Fetch.BaseURL = fetchBaseURL
	}
	if fetchOutDir != "" {
		cfg.Fetch.OutDir = fetchOutDir
	}
	if fetchConcurrency > 0 {
		cfg.Fetch.Concurrency = fetchConcurrency
	}
	if fetchRPS > 0 {
		cfg.Fetch.RequestsPerSecond = fetchRPS
	}
	if fetchNoRobots {
		cfg.Fetch.RespectRobots = false
	}
	if fetchNoCache {
		cfg.Cache.Enabled = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Crawling: %s\n", cfg.Fetch.BaseURL)
	}

	downloader := scrape.NewDownloader(cfg)
	results, err := downloader.Crawl(ctx, cfg.Fetch.BaseURL)
	if err != nil {
		return err
	}

	var downloaded, skipped, failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.URL, res.Err)
		case res.Skipped:
			skipped++
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "- %s (exists)\n", res.Path)
			}
		default:
			downloaded++
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "✓ %s\n", res.Path)
			}
		}
	}
	fmt.Printf("Downloaded %d file(s), skipped %d, %d failed\n", downloaded, skipped, failed)

	if failed > 0 && downloaded == 0 && skipped == 0 {
		return fmt.Errorf("all downloads failed")
	}
	return nil
}
