package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/ychekhovska/jphstats/internal/model"
)

func sampleReport() model.Report {
	roi := 0.375
	return model.Report{
		Summary: model.SummaryMetrics{
			TotalSuicides:          21_000,
			TotalAnnualLossBillion: 1_234.5,
			TotalLossPreventedYen:  185_000_000_000,
			OverallROI:             &roi,
			ReductionRate:          0.15,
		},
		WorkingAge: model.WorkingAgeMetrics{PercentOfTotalLoss: 62.3},
		Gender: &model.GenderSummary{
			MalePercentage:   67.9,
			FemalePercentage: 32.1,
		},
		TopCauses: []model.CauseCount{
			{Cause: "Health issues", Deaths: 10_000, Percentage: 48.0},
		},
		YearlyTrends: map[int]float64{2021: 21_007, 2022: 21_881},
	}
}

func TestBuildPrompt_ContainsFigures(t *testing.T) {
	prompt := BuildPrompt(sampleReport())

	for _, want := range []string{
		"21000",
		"1234.5 billion yen",
		"0.375",
		"67.9% male",
		"Health issues",
		"Year 2021: 21007",
		"Year 2022: 21881",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
}

func TestBuildPrompt_NilROI(t *testing.T) {
	report := sampleReport()
	report.Summary.OverallROI = nil
	prompt := BuildPrompt(report)
	if !strings.Contains(prompt, "undefined") {
		t.Error("expected undefined ROI to be stated, not invented")
	}
}

func TestSummarizer_Disabled(t *testing.T) {
	s, err := NewSummarizer(Config{})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}
	if s.IsEnabled() {
		t.Fatal("summarizer with no provider should be disabled")
	}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if summary.Enabled {
		t.Error("disabled summarizer must report Enabled=false")
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	if _, err := NewProvider(Config{Provider: "mystery"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestSummarizer_GenerateSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		resp := openai.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: "The analysis covers 21000 suicides.",
					},
					FinishReason: "stop",
				},
			},
			Usage: openai.Usage{TotalTokens: 80},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	s, err := NewSummarizer(Config{
		Provider: "openai",
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Model:    "gpt-4o-mini",
		Timeout:  5,
	})
	if err != nil {
		t.Fatalf("NewSummarizer: %v", err)
	}

	summary, err := s.GenerateSummary(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("GenerateSummary: %v", err)
	}
	if !summary.Enabled || summary.Provider != "openai" {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Text != "The analysis covers 21000 suicides." {
		t.Errorf("unexpected narrative %q", summary.Text)
	}
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
