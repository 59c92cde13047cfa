package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ychekhovska/jphstats/internal/pipeline"
)

var (
	processInDir  string
	processOutDir string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Normalize raw CSV tables into tidy long-format records",
	Long: `Process reads every CSV in the raw data directory, auto-detects the
header row, classifies the table shape (age brackets, gender columns or
cause rows), converts era-year labels to Gregorian years and melts the
table into tidy (year, category, metric, value) records.

Each input produces {stem}_long.csv in the processed directory. A file
that cannot be parsed is reported and skipped; the batch continues.

Example:
  jphstats process
  jphstats process --in data_raw/csvs --out data_processed`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processInDir, "in", "", "raw CSV directory (default from config)")
	processCmd.Flags().StringVar(&processOutDir, "out", "", "processed output directory (default from config)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if processInDir != "" {
		cfg.Data.RawDir = processInDir
	}
	if processOutDir != "" {
		cfg.Data.ProcessedDir = processOutDir
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	summary, err := p.ProcessDir()
	if err != nil {
		return err
	}
	p.Renderer().RenderBatchSummary(os.Stderr, summary)

	if summary.Succeeded() == 0 {
		return fmt.Errorf("no files could be processed")
	}
	return nil
}
