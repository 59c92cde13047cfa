package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ychekhovska/jphstats/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jphstats",
	Short: "jphstats - Japanese suicide statistics pipeline and economic analysis",
	Long: `jphstats turns the National Police Agency's annual suicide statistics
publications into analysis-ready datasets and an economic-impact report.

The pipeline has three stages:
  fetch    download the publication files from the NPA site
  process  normalize raw CSV tables into tidy long-format records
  compile  unify the tidy records into one year-keyed dataset

'report' then computes the economic burden, intervention impact and
program cost-effectiveness figures from the processed data.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("jphstats v0.3.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.jphstats/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.jphstats")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// bindEnv wires JPHSTATS_* environment variables to the nested config
// keys, e.g. JPHSTATS_FETCH_BASE_URL covers fetch.base_url.
func bindEnv() {
	viper.SetEnvPrefix("JPHSTATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig assembles the effective configuration: built-in defaults,
// overlaid by the config file when one was found, overlaid by JPHSTATS_*
// environment variables. Commands apply their flag overrides on top,
// which keeps the documented flag > env > file > default precedence.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if file := viper.ConfigFileUsed(); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", file, err)
		}
	}

	applyViperOverrides(cfg)
	cfg.Verbose = viper.GetBool("verbose") || verbose
	return cfg, nil
}

// applyViperOverrides lays viper's view of each setting, where the
// environment wins over the config file, on top of cfg.
func applyViperOverrides(cfg *model.Config) {
	setString := func(key string, dst *string) {
		if viper.IsSet(key) {
			*dst = viper.GetString(key)
		}
	}
	setInt := func(key string, dst *int) {
		if viper.IsSet(key) {
			*dst = viper.GetInt(key)
		}
	}
	setBool := func(key string, dst *bool) {
		if viper.IsSet(key) {
			*dst = viper.GetBool(key)
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if viper.IsSet(key) {
			*dst = viper.GetDuration(key)
		}
	}

	setString("assumptions_file", &cfg.AssumptionsFile)

	setDuration("http.timeout", &cfg.HTTP.Timeout)
	setString("http.user_agent", &cfg.HTTP.UserAgent)
	if viper.IsSet("http.max_body_bytes") {
		cfg.HTTP.MaxBodyBytes = viper.GetInt64("http.max_body_bytes")
	}
	setInt("http.retries", &cfg.HTTP.Retries)
	setString("http.http_proxy", &cfg.HTTP.HTTPProxy)
	setString("http.https_proxy", &cfg.HTTP.HTTPSProxy)

	setString("fetch.base_url", &cfg.Fetch.BaseURL)
	setString("fetch.out_dir", &cfg.Fetch.OutDir)
	setInt("fetch.concurrency", &cfg.Fetch.Concurrency)
	if viper.IsSet("fetch.requests_per_second") {
		cfg.Fetch.RequestsPerSecond = viper.GetFloat64("fetch.requests_per_second")
	}
	setInt("fetch.burst", &cfg.Fetch.Burst)
	setBool("fetch.respect_robots", &cfg.Fetch.RespectRobots)

	setBool("cache.enabled", &cfg.Cache.Enabled)
	setString("cache.dir", &cfg.Cache.Dir)
	setDuration("cache.memory_ttl", &cfg.Cache.MemoryTTL)
	setDuration("cache.disk_ttl", &cfg.Cache.DiskTTL)

	setString("data.raw_dir", &cfg.Data.RawDir)
	setString("data.processed_dir", &cfg.Data.ProcessedDir)
	setString("data.report_dir", &cfg.Data.ReportDir)
	setInt("data.header_scan_rows", &cfg.Data.HeaderScanRows)

	setString("llm.provider", &cfg.LLM.Provider)
	setString("llm.model", &cfg.LLM.Model)
	setString("llm.base_url", &cfg.LLM.BaseURL)
	setInt("llm.max_tokens", &cfg.LLM.MaxTokens)
	setInt("llm.timeout", &cfg.LLM.Timeout)
}
