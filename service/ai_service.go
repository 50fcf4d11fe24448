package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

const defaultAdvisorModel = "gemini-1.5-flash"

// ContentGenerator produces text for a prompt. Satisfied by GeminiGenerator
// in production and by stubs in tests.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator wraps the Google GenAI client for prompt-based generation.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a generator for the Gemini API backend.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultAdvisorModel
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateContent sends the prompt to Gemini and returns the combined
// textual response.
func (g *GeminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// AdvisorService turns evaluation output into natural-language guidance.
// Without a generator it falls back to deterministic advice built from the
// same data, so the endpoints work without an API key.
type AdvisorService struct {
	generator ContentGenerator
	logger    *zap.Logger
}

func NewAdvisorService(generator ContentGenerator, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{generator: generator, logger: logger}
}

// GenerateInsights produces a few actionable bullet points for an evaluation.
func (s *AdvisorService) GenerateInsights(ctx context.Context, result domain.EvaluationResult) string {
	if s.generator == nil {
		return s.fallbackInsights(result)
	}

	employment := "Salaried"
	if result.Profile.SelfEmployed {
		employment = "Self-employed"
	}

	prompt := fmt.Sprintf(`Based on this loan application profile:
- Monthly income: ₹%s
- Credit history: %d
- Loan amount: ₹%s
- Employment: %s
- Property area: %s

Eligible banks: %d of %d
Common improvement areas:
%s

Provide personalized financial advice in 3-4 bullet points to help improve their loan prospects. Be specific and actionable.`,
		formatINR(result.Profile.TotalIncome()),
		result.Profile.CreditHistory,
		formatINR(result.Profile.LoanAmount),
		employment,
		result.Profile.PropertyArea,
		result.Summary.HighlyEligible+result.Summary.Eligible,
		result.Summary.TotalBanks,
		bulletList(result.Suggestions),
	)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("insight generation failed, using fallback", zap.Error(err))
		return s.fallbackInsights(result)
	}
	return text
}

// Chat answers a free-form loan question in the applicant's context.
func (s *AdvisorService) Chat(ctx context.Context, question string, profile domain.ApplicantProfile) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question is required")
	}

	if s.generator == nil {
		return s.fallbackChat(profile), nil
	}

	employment := "Salaried"
	if profile.SelfEmployed {
		employment = "Self-employed"
	}

	prompt := fmt.Sprintf(`You are a helpful loan advisor for Indian banking. User context:
- Monthly income: ₹%s
- Credit history: %d
- Employment: %s

User question: %s

Provide helpful, accurate advice about loans and banking in India. Keep responses concise and actionable.`,
		formatINR(profile.TotalIncome()), profile.CreditHistory, employment, question)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("chat advisor failed, using fallback", zap.Error(err))
		return s.fallbackChat(profile), nil
	}
	return text, nil
}

func (s *AdvisorService) fallbackInsights(result domain.EvaluationResult) string {
	eligible := result.Summary.HighlyEligible + result.Summary.Eligible
	var builder strings.Builder
	fmt.Fprintf(&builder, "- You qualify with %d of %d banks in the catalog.\n", eligible, result.Summary.TotalBanks)
	for i, suggestion := range result.Suggestions {
		if i == 3 {
			break
		}
		fmt.Fprintf(&builder, "- %s\n", suggestion)
	}
	builder.WriteString("- Compare interest rate ranges and EMI estimates before applying.")
	return builder.String()
}

func (s *AdvisorService) fallbackChat(profile domain.ApplicantProfile) string {
	if profile.CreditHistory == 0 {
		return "Building a repayment track record is the single biggest lever for loan approval in India. Start with a small secured credit product, keep your EMI commitments under 40% of monthly income, and compare banks that accept applicants with limited credit history."
	}
	return "With an established credit history, focus on keeping your total EMI commitments under 40% of monthly income and compare the interest rate ranges across banks. Public sector banks typically offer lower rates while private banks process faster."
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- none"
	}
	var builder strings.Builder
	for _, item := range items {
		fmt.Fprintf(&builder, "- %s\n", item)
	}
	return strings.TrimRight(builder.String(), "\n")
}
