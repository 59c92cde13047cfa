package model

import "time"

// Config is the process-wide configuration. It is assembled from defaults,
// the config file, JPHSTATS_* environment variables and CLI flags, then
// passed explicitly into the pipeline; nothing reads it as ambient state.
type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Fetch FetchConfig `yaml:"fetch"`
	Cache CacheConfig `yaml:"cache"`
	Data  DataConfig  `yaml:"data"`
	LLM   LLMConfig   `yaml:"llm"`

	// AssumptionsFile optionally overrides the built-in economic
	// assumption tables with a YAML file.
	AssumptionsFile string `yaml:"assumptions_file"`

	Verbose bool `yaml:"verbose"`
}

// HTTPConfig controls outbound HTTP behaviour for the fetch collaborator.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	Retries      int           `yaml:"retries"`
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
}

// FetchConfig controls publication discovery and download.
type FetchConfig struct {
	BaseURL           string  `yaml:"base_url"`
	OutDir            string  `yaml:"out_dir"`
	Concurrency       int     `yaml:"concurrency"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	RespectRobots     bool    `yaml:"respect_robots"`
}

// CacheConfig controls the listing-page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// DataConfig locates the directory layout of the dataset.
type DataConfig struct {
	RawDir       string `yaml:"raw_dir"`
	ProcessedDir string `yaml:"processed_dir"`
	ReportDir    string `yaml:"report_dir"`

	// HeaderScanRows bounds the header-row auto-detection scan.
	HeaderScanRows int `yaml:"header_scan_rows"`
}

// LLMConfig configures the optional narrative appendix generator. The
// narrative never affects any computed figure.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "" disables, "openai" enables
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from environment only, never persisted
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   int    `yaml:"timeout"` // seconds
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "jphstats/0.3 (+https://github.com/ychekhovska/jphstats)",
			MaxBodyBytes: 20_000_000,
			Retries:      3,
		},
		Fetch: FetchConfig{
			BaseURL:           "https://www.npa.go.jp/safetylife/seianki/jisatsu/",
			OutDir:            "data_raw/raw_downloads",
			Concurrency:       4,
			RequestsPerSecond: 1,
			Burst:             2,
			RespectRobots:     true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".jphstats-cache",
			MemoryTTL: 10 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Data: DataConfig{
			RawDir:         "data_raw/csvs",
			ProcessedDir:   "data_processed",
			ReportDir:      "reports",
			HeaderScanRows: 10,
		},
		LLM: LLMConfig{
			MaxTokens: 1000,
			Timeout:   30,
		},
	}
}
