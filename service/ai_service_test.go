package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleResult() domain.EvaluationResult {
	return domain.EvaluationResult{
		Profile: domain.ApplicantProfile{
			Income:        50000,
			CreditHistory: 1,
			PropertyArea:  domain.AreaUrban,
			LoanAmount:    1_000_000,
		},
		Summary: domain.TierSummary{
			TotalBanks:     8,
			HighlyEligible: 2,
			Eligible:       3,
		},
		Suggestions: []string{"Consider adding a co-applicant to increase total household income"},
	}
}

func TestGenerateInsights_UsesGenerator(t *testing.T) {
	stub := &stubGenerator{response: "- advice"}
	advisor := NewAdvisorService(stub, zap.NewNop())

	got := advisor.GenerateInsights(context.Background(), sampleResult())

	if got != "- advice" {
		t.Fatalf("expected generator output, got %q", got)
	}
	if !strings.Contains(stub.lastPrompt, "₹50,000") {
		t.Errorf("prompt should include the formatted income, got:\n%s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Eligible banks: 5 of 8") {
		t.Errorf("prompt should summarize eligibility, got:\n%s", stub.lastPrompt)
	}
}

func TestGenerateInsights_FallbackWithoutGenerator(t *testing.T) {
	advisor := NewAdvisorService(nil, zap.NewNop())

	first := advisor.GenerateInsights(context.Background(), sampleResult())
	second := advisor.GenerateInsights(context.Background(), sampleResult())

	if first != second {
		t.Errorf("fallback insights must be deterministic")
	}
	if !strings.Contains(first, "5 of 8 banks") {
		t.Errorf("fallback should mention eligibility counts, got %q", first)
	}
}

func TestGenerateInsights_FallbackOnGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	advisor := NewAdvisorService(stub, zap.NewNop())

	got := advisor.GenerateInsights(context.Background(), sampleResult())

	if got == "" {
		t.Fatalf("expected fallback text on generator failure")
	}
}

func TestChat_RequiresQuestion(t *testing.T) {
	advisor := NewAdvisorService(nil, zap.NewNop())

	if _, err := advisor.Chat(context.Background(), "   ", domain.ApplicantProfile{}); err == nil {
		t.Errorf("expected error for empty question")
	}
}

func TestChat_WithGenerator(t *testing.T) {
	stub := &stubGenerator{response: "answer"}
	advisor := NewAdvisorService(stub, zap.NewNop())

	got, err := advisor.Chat(context.Background(), "Which loan should I take?", domain.ApplicantProfile{Income: 40000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "answer" {
		t.Errorf("expected generator answer, got %q", got)
	}
	if !strings.Contains(stub.lastPrompt, "Which loan should I take?") {
		t.Errorf("prompt should carry the question, got:\n%s", stub.lastPrompt)
	}
}
