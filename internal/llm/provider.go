package llm

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/ychekhovska/jphstats/internal/model"
)

// Provider generates the narrative appendix of a report. The narrative
// restates computed figures; it must never introduce new ones.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a narrative from the prompt.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest is the input for narrative generation.
type SummarizeRequest struct {
	Prompt    string
	Model     string
	MaxTokens int
}

// SummarizeResponse is the generated narrative.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig, pulling the API key from the
// environment when it is not set.
func ConfigFromModel(mc model.LLMConfig) Config {
	apiKey := mc.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    apiKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}

// NewProvider creates a provider from configuration. An empty provider
// name disables narrative generation and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch config.Provider {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// BuildPrompt renders the report's key figures into a prompt. Every
// number the narrative may mention is stated in the prompt; the model is
// forbidden from inventing others.
func BuildPrompt(report model.Report) string {
	roi := "undefined (zero intervention cost)"
	if report.Summary.OverallROI != nil {
		roi = fmt.Sprintf("%.3f", *report.Summary.OverallROI)
	}

	prompt := fmt.Sprintf(`You are writing a short narrative appendix for an economic-impact report on suicide statistics in Japan.

RULES:
1. Use ONLY the figures listed below. Do not compute, estimate or invent any number.
2. Do not speculate about causes or recommend policy.
3. Keep a neutral, factual register. 4-6 sentences.

Figures:
- Total suicides analyzed: %.0f
- Total annual economic loss: %.1f billion yen
- Loss preventable at %.0f%% intervention effectiveness: %.0f yen
- Overall ROI: %s
- Working-age (20-59) share of loss: %.1f%%
`,
		report.Summary.TotalSuicides,
		report.Summary.TotalAnnualLossBillion,
		report.Summary.ReductionRate*100,
		report.Summary.TotalLossPreventedYen,
		roi,
		report.WorkingAge.PercentOfTotalLoss,
	)

	if report.Gender != nil {
		prompt += fmt.Sprintf("- Gender split: %.1f%% male, %.1f%% female\n",
			report.Gender.MalePercentage, report.Gender.FemalePercentage)
	}
	for _, c := range report.TopCauses {
		prompt += fmt.Sprintf("- Cause %q: %.0f deaths (%.1f%%)\n", c.Cause, c.Deaths, c.Percentage)
	}
	if len(report.YearlyTrends) > 0 {
		years := make([]int, 0, len(report.YearlyTrends))
		for y := range report.YearlyTrends {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			prompt += fmt.Sprintf("- Year %d: %.0f suicides\n", y, report.YearlyTrends[y])
		}
	}

	prompt += "\nWrite the narrative now."
	return prompt
}
