package scrape

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/ychekhovska/jphstats/internal/cache"
	"github.com/ychekhovska/jphstats/internal/model"
	"github.com/ychekhovska/jphstats/internal/worker"
)

// Downloader crawls the publication index and downloads the per-year
// data files. Listing pages are cached; data files are skipped when
// already present on disk, so a re-run only fetches what is missing.
type Downloader struct {
	fetcher       *Fetcher
	limiter       *worker.Limiter
	robots        *RobotsChecker
	pages         cache.Cache
	outDir        string
	concurrency   int
	respectRobots bool
}

// NewDownloader assembles a downloader from configuration.
func NewDownloader(cfg *model.Config) *Downloader {
	var pages cache.Cache
	if cfg.Cache.Enabled {
		pages = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var robots *RobotsChecker
	if cfg.Fetch.RespectRobots {
		robots = NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Downloader{
		fetcher:       NewFetcher(cfg.HTTP),
		limiter:       worker.NewLimiter(cfg.Fetch.RequestsPerSecond, cfg.Fetch.Burst),
		robots:        robots,
		pages:         pages,
		outDir:        cfg.Fetch.OutDir,
		concurrency:   cfg.Fetch.Concurrency,
		respectRobots: cfg.Fetch.RespectRobots,
	}
}

// DownloadResult is the outcome of one file download.
type DownloadResult struct {
	URL     string
	Path    string
	Skipped bool
	Err     error
}

// GetError implements worker.Result.
func (r DownloadResult) GetError() error {
	return r.Err
}

// Crawl walks the publication index at baseURL, collects the data-file
// links from it and from every per-year page, and downloads them
// concurrently. Results come back sorted by URL.
func (d *Downloader) Crawl(ctx context.Context, baseURL string) ([]DownloadResult, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	body, err := d.page(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	links, err := Links(body, base)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	files := DataFiles(links)
	var pageFailures []DownloadResult
	for _, page := range YearPages(links) {
		pageBody, err := d.page(ctx, page.URL)
		if err != nil {
			// A broken year page does not abort the crawl; it is
			// reported alongside the download results.
			pageFailures = append(pageFailures, DownloadResult{URL: page.URL, Err: err})
			continue
		}
		pageURL, err := url.Parse(page.URL)
		if err != nil {
			continue
		}
		pageLinks, err := Links(pageBody, pageURL)
		if err != nil {
			continue
		}
		files = append(files, DataFiles(pageLinks)...)
	}

	targets := dedupeLinks(files)
	if len(targets) == 0 {
		return nil, fmt.Errorf("no data files found under %s", baseURL)
	}

	if err := os.MkdirAll(d.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", d.outDir, err)
	}

	pool := worker.NewPool(d.concurrency)
	pool.Start()
	for _, target := range targets {
		pool.Submit(&downloadJob{downloader: d, url: target.URL})
	}

	results := make([]DownloadResult, 0, len(targets)+len(pageFailures))
	for _, res := range pool.Wait() {
		if dr, ok := res.(DownloadResult); ok {
			results = append(results, dr)
		}
	}
	results = append(results, pageFailures...)
	sort.Slice(results, func(i, j int) bool { return results[i].URL < results[j].URL })
	return results, nil
}

// page fetches a listing page through the cache.
func (d *Downloader) page(ctx context.Context, rawURL string) ([]byte, error) {
	key := cache.CacheKey(rawURL)
	if d.pages != nil {
		if body, ok := d.pages.Get(key); ok {
			return body, nil
		}
	}

	if err := d.limiter.Wait(ctx, rawURL); err != nil {
		return nil, err
	}
	result, err := d.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if d.pages != nil {
		_ = d.pages.Set(key, result.Body, 0)
	}
	return result.Body, nil
}

// downloadJob fetches one data file; it implements worker.Job.
type downloadJob struct {
	downloader *Downloader
	url        string
}

// Execute downloads the file unless it already exists on disk.
func (j *downloadJob) Execute(ctx context.Context) worker.Result {
	d := j.downloader
	result := DownloadResult{URL: j.url}

	name, err := fileName(j.url)
	if err != nil {
		result.Err = err
		return result
	}
	dest := filepath.Join(d.outDir, name)
	result.Path = dest

	if _, err := os.Stat(dest); err == nil {
		result.Skipped = true
		return result
	}

	var crawlDelay time.Duration
	if d.respectRobots && d.robots != nil {
		allowed, delay, err := d.robots.CanFetch(ctx, j.url)
		if err != nil {
			result.Err = err
			return result
		}
		if !allowed {
			result.Err = fmt.Errorf("disallowed by robots.txt: %s", j.url)
			return result
		}
		crawlDelay = delay
	}

	if err := d.limiter.WaitWithDelay(ctx, j.url, crawlDelay); err != nil {
		result.Err = err
		return result
	}

	fetched, err := d.fetcher.FetchWithRetry(ctx, j.url)
	if err != nil {
		result.Err = err
		return result
	}

	if err := os.WriteFile(dest, fetched.Body, 0o644); err != nil {
		result.Err = fmt.Errorf("write %s: %w", dest, err)
		return result
	}
	return result
}

func fileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("no file name in %s", rawURL)
	}
	return name, nil
}

func dedupeLinks(links []Link) []Link {
	seen := make(map[string]bool, len(links))
	var out []Link
	for _, l := range links {
		if seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		out = append(out, l)
	}
	return out
}
