package llm

import (
	"context"
	"fmt"

	"github.com/ychekhovska/jphstats/internal/model"
)

// Summarizer turns a finished report into its narrative appendix. It runs
// after all figures are computed and never modifies them.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. With no provider
// configured the summarizer is disabled but still usable.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces the narrative appendix for a report.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return &model.LLMSummary{Enabled: false}, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Prompt:    BuildPrompt(report),
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate narrative: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:  true,
		Provider: s.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Summary,
	}
	if resp.Summary == "" {
		summary.Warnings = append(summary.Warnings, "provider returned an empty narrative")
	}
	return summary, nil
}
