package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ychekhovska/jphstats/internal/econ"
	"github.com/ychekhovska/jphstats/internal/pipeline"
)

var (
	reportOut         string
	reportAssumptions string
	reportLLM         bool
	reportLLMModel    string
	reportProgram     bool
	programSchools    int
	programWorkshops  int
	programContacts   int
	programBudget     float64
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the economic-impact report",
	Long: `Report aggregates the processed records and computes, per age bracket,
the lifetime earnings lost, the annual economic loss, the loss a
15%-effective intervention would prevent and the ROI of that
intervention. Gender and cause breakdowns are included when the
processed data covers them.

With --program, the report adds a cost-effectiveness analysis of a
school-workshop and hotline program under conservative, moderate and
optimistic effectiveness scenarios, assessed against the WHO
cost-per-DALY thresholds.

Example:
  jphstats report
  jphstats report --assumptions my_assumptions.yaml
  jphstats report --program --schools 145 --workshops 97 --contacts 9000
  jphstats report --llm`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportOut, "out", "", "output JSON path (default: <report dir>/report.json)")
	reportCmd.Flags().StringVar(&reportAssumptions, "assumptions", "", "YAML file overriding the economic assumption tables")
	reportCmd.Flags().BoolVar(&reportLLM, "llm", false, "append an LLM-generated narrative (requires OPENAI_API_KEY)")
	reportCmd.Flags().StringVar(&reportLLMModel, "llm-model", "gpt-4o-mini", "LLM model name")

	reportCmd.Flags().BoolVar(&reportProgram, "program", false, "include the program cost-effectiveness analysis")
	reportCmd.Flags().IntVar(&programSchools, "schools", 0, "schools reached by the program")
	reportCmd.Flags().IntVar(&programWorkshops, "workshops", 0, "workshops delivered")
	reportCmd.Flags().IntVar(&programContacts, "contacts", 0, "hotline contacts handled")
	reportCmd.Flags().Float64Var(&programBudget, "budget", 0, "program budget in yen (default: built-in cost model)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if reportAssumptions != "" {
		cfg.AssumptionsFile = reportAssumptions
	}
	if reportLLM {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = reportLLMModel
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	records, sources, err := p.LoadProcessed()
	if err != nil {
		return err
	}

	opts := pipeline.ReportOptions{WithLLM: reportLLM}
	if reportProgram {
		if programSchools <= 0 && programContacts <= 0 {
			return fmt.Errorf("--program needs --schools and/or --contacts")
		}
		opts.Program = &econ.ProgramInputs{
			SchoolsReached:     programSchools,
			WorkshopsDelivered: programWorkshops,
			HotlineContacts:    programContacts,
			BudgetYen:          programBudget,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := p.BuildReport(ctx, records, sources, opts)
	if err != nil {
		return err
	}

	out := reportOut
	if out == "" {
		if err := os.MkdirAll(cfg.Data.ReportDir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", cfg.Data.ReportDir, err)
		}
		out = filepath.Join(cfg.Data.ReportDir, "report.json")
	}
	if err := p.Renderer().RenderJSON(report, out); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote report: %s\n", out)
	fmt.Printf("  Total suicides analyzed: %.0f\n", report.Summary.TotalSuicides)
	fmt.Printf("  Annual economic loss:    %.1f billion yen\n", report.Summary.TotalAnnualLossBillion)
	if report.Summary.OverallROI != nil {
		fmt.Printf("  Intervention ROI:        %.3f\n", *report.Summary.OverallROI)
	}
	if report.Program != nil {
		fmt.Printf("  Program reach:           %d individuals\n", report.Program.Reach.TotalReached)
	}
	return nil
}
