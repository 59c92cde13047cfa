package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ychekhovska/jphstats/internal/pipeline"
	"github.com/ychekhovska/jphstats/internal/reshape"
)

var (
	compileOut  string
	compileJoin string
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Unify processed records into one year-keyed dataset",
	Long: `Compile pivots the tidy records back into a wide table keyed by year:
one column per age bracket plus the gender columns, joined on year.

The join policy is explicit. 'left' keeps every year that has age data
and leaves gender cells null where no gender table covers that year;
'inner' keeps only years present on both sides.

Example:
  jphstats compile
  jphstats compile --join inner --out data_processed/compiled.csv`,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVar(&compileOut, "out", "", "output path (default: <processed dir>/compiled.csv)")
	compileCmd.Flags().StringVar(&compileJoin, "join", "left", "join policy: left or inner")
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var policy reshape.JoinPolicy
	switch compileJoin {
	case "left":
		policy = reshape.JoinLeft
	case "inner":
		policy = reshape.JoinInner
	default:
		return fmt.Errorf("unknown join policy %q (use left or inner)", compileJoin)
	}

	out := compileOut
	if out == "" {
		out = filepath.Join(cfg.Data.ProcessedDir, "compiled.csv")
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	if err := p.Compile(policy, out); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote compiled dataset (%s join): %s\n", policy, out)
	return nil
}
