package service

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
	"github.com/sooryathamilselvan/LoanPrediction/repository"
)

// RecommendationService runs the eligibility scorer across the whole bank
// catalog and assembles the evaluation output. The catalog and cache are
// injected so the engine can be exercised against synthetic data.
type RecommendationService struct {
	banks        repository.BankRepository
	scorer       *EligibilityService
	emi          *EMIService
	improvements *ImprovementService
	cache        repository.CacheRepository
	logger       *zap.Logger
}

func NewRecommendationService(
	banks repository.BankRepository,
	scorer *EligibilityService,
	emi *EMIService,
	improvements *ImprovementService,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		banks:        banks,
		scorer:       scorer,
		emi:          emi,
		improvements: improvements,
		cache:        cache,
		logger:       logger,
	}
}

// RecommendAll scores the applicant against every bank and returns the
// canonical ranked sequence: match score descending, catalog order preserved
// on ties. All derived views slice or filter this sequence.
func (s *RecommendationService) RecommendAll(profile domain.ApplicantProfile) []domain.Recommendation {
	banks := s.banks.All()
	recommendations := make([]domain.Recommendation, 0, len(banks))
	for _, bank := range banks {
		recommendations = append(recommendations, s.scorer.Score(profile, bank))
	}

	// The sort must be stable: tie-break behavior depends on the complete
	// catalog order.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	return recommendations
}

// Top returns the first n entries of the ranked sequence.
func (s *RecommendationService) Top(profile domain.ApplicantProfile, n int) []domain.Recommendation {
	recommendations := s.RecommendAll(profile)
	if n < 0 {
		n = 0
	}
	if n > len(recommendations) {
		n = len(recommendations)
	}
	return recommendations[:n]
}

// EligibleOnly filters the ranked sequence to the two top tiers, preserving
// order.
func (s *RecommendationService) EligibleOnly(profile domain.ApplicantProfile) []domain.Recommendation {
	var eligible []domain.Recommendation
	for _, rec := range s.RecommendAll(profile) {
		if rec.Eligible() {
			eligible = append(eligible, rec)
		}
	}
	return eligible
}

// Evaluate runs the full pipeline: rank the catalog, count tiers, compute
// affordability metrics and synthesize improvement suggestions. Results are
// cached keyed by a hash of the profile; cache failures are logged and
// ignored since recomputation is cheap and deterministic.
func (s *RecommendationService) Evaluate(profile domain.ApplicantProfile) domain.EvaluationResult {
	key, keyErr := profileCacheKey(profile)
	if keyErr == nil && s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.EvaluationResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				s.logger.Debug("evaluation served from cache", zap.String("key", key))
				return result
			}
			s.logger.Warn("discarding unreadable cached evaluation", zap.String("key", key))
		}
	}

	recommendations := s.RecommendAll(profile)

	summary := domain.TierSummary{TotalBanks: len(recommendations)}
	for _, rec := range recommendations {
		switch rec.EligibilityTier {
		case domain.TierHighlyEligible:
			summary.HighlyEligible++
		case domain.TierEligible:
			summary.Eligible++
		case domain.TierConditionallyEligible:
			summary.ConditionallyEligible++
		case domain.TierNotEligible:
			summary.NotEligible++
		}
	}

	result := domain.EvaluationResult{
		Profile:         profile,
		Summary:         summary,
		Recommendations: recommendations,
		Metrics:         s.emi.Metrics(profile),
		Suggestions:     s.improvements.Synthesize(profile, recommendations),
	}

	s.logger.Info("evaluation completed",
		zap.Int("banks", summary.TotalBanks),
		zap.Int("highly_eligible", summary.HighlyEligible),
		zap.Int("eligible", summary.Eligible),
	)

	if keyErr == nil && s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(payload)); err != nil {
				s.logger.Warn("failed to cache evaluation", zap.Error(err))
			}
		}
	}

	return result
}

// profileCacheKey hashes the canonical profile JSON so equal profiles share
// one cache entry.
func profileCacheKey(profile domain.ApplicantProfile) (string, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("evaluation:%x", sum), nil
}
