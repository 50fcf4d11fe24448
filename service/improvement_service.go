package service

import (
	"sort"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

// ImprovementService rolls per-bank improvement gaps into one prioritized,
// de-duplicated suggestion list.
type ImprovementService struct{}

func NewImprovementService() *ImprovementService {
	return &ImprovementService{}
}

// Synthesize flattens every improvement message across the recommendations,
// keeps the five most frequent, then appends profile-derived suggestions
// whose triggers hold. Frequency ties keep first-occurrence order so
// identical inputs always produce identical output. The final list is
// de-duplicated preserving first occurrence and is not re-sorted.
//
// Frequencies are counted on the literal display text; the finding codes
// exist so counting can move to codes later without changing the API.
func (s *ImprovementService) Synthesize(profile domain.ApplicantProfile, recommendations []domain.Recommendation) []string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range recommendations {
		for _, gap := range rec.Improvements {
			if counts[gap.Message] == 0 {
				order = append(order, gap.Message)
			}
			counts[gap.Message]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	suggestions := make([]string, 0, TopSuggestionCount+3)
	for i, msg := range order {
		if i == TopSuggestionCount {
			break
		}
		suggestions = append(suggestions, msg)
	}

	totalIncome := profile.TotalIncome()

	if profile.CreditHistory == 0 {
		suggestions = append(suggestions, "Build credit history by taking a small loan or credit card and repaying on time")
	}

	if totalIncome < CoapplicantIncomeThreshold {
		suggestions = append(suggestions, "Consider adding a co-applicant to increase total household income")
	}

	// Cheap proxy ratio, not the per-bank EMI ratio. A zero income yields
	// +Inf, which correctly triggers the suggestion.
	proxyRatio := profile.LoanAmount * EMIProxyFactor / totalIncome * 100
	if proxyRatio > EMIProxyRatioLimit {
		suggestions = append(suggestions, "Consider reducing loan amount or increasing loan tenure to improve EMI-to-income ratio")
	}

	seen := make(map[string]struct{}, len(suggestions))
	deduped := make([]string, 0, len(suggestions))
	for _, msg := range suggestions {
		if _, ok := seen[msg]; ok {
			continue
		}
		seen[msg] = struct{}{}
		deduped = append(deduped, msg)
	}

	return deduped
}
