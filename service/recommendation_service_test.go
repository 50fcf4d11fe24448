package service

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
	"github.com/sooryathamilselvan/LoanPrediction/repository"
)

func newTestRecommendationService(banks []*domain.Bank) *RecommendationService {
	emi := NewEMIService()
	return NewRecommendationService(
		repository.NewBankRepositoryMemoryFrom(banks),
		NewEligibilityService(emi),
		emi,
		NewImprovementService(),
		repository.NewMemoryCache(),
		zap.NewNop(),
	)
}

// bankNamed clones the test bank under a new identity so scores tie exactly.
func bankNamed(id string) *domain.Bank {
	b := testBank()
	b.ID = id
	b.Name = id
	return b
}

func TestRecommendAll_StableOnTies(t *testing.T) {
	svc := newTestRecommendationService([]*domain.Bank{
		bankNamed("alpha"),
		bankNamed("beta"),
		bankNamed("gamma"),
	})

	recs := svc.RecommendAll(testProfile())

	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		if recs[i].Bank.ID != want {
			t.Errorf("tie at position %d broke catalog order: got %q, want %q", i, recs[i].Bank.ID, want)
		}
	}
}

func TestRecommendAll_SortedByScoreDescending(t *testing.T) {
	strict := bankNamed("strict")
	strict.HomeLoanCriteria.MinIncome = 500000
	strict.HomeLoanCriteria.MinCreditScore = 800

	svc := newTestRecommendationService([]*domain.Bank{strict, bankNamed("easy")})

	recs := svc.RecommendAll(testProfile())

	if recs[0].Bank.ID != "easy" {
		t.Fatalf("expected the higher-scoring bank first, got %q", recs[0].Bank.ID)
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].MatchScore > recs[i-1].MatchScore {
			t.Errorf("recommendations not sorted descending at position %d", i)
		}
	}
}

func TestTopAndEligibleOnlyAreViews(t *testing.T) {
	strict := bankNamed("strict")
	strict.HomeLoanCriteria.MinIncome = 500000
	strict.HomeLoanCriteria.MinCreditScore = 800
	strict.HomeLoanCriteria.PropertyAreas = []string{domain.AreaRural}
	strict.HomeLoanCriteria.MinAge = 50

	svc := newTestRecommendationService([]*domain.Bank{strict, bankNamed("easy"), bankNamed("easy2")})

	profile := testProfile()
	all := svc.RecommendAll(profile)

	top := svc.Top(profile, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 top entries, got %d", len(top))
	}
	for i := range top {
		if top[i].Bank.ID != all[i].Bank.ID {
			t.Errorf("top is not a prefix of the ranked sequence at %d", i)
		}
	}

	eligible := svc.EligibleOnly(profile)
	j := 0
	for _, rec := range all {
		if j < len(eligible) && eligible[j].Bank.ID == rec.Bank.ID {
			j++
		}
	}
	if j != len(eligible) {
		t.Errorf("eligible-only is not an order-preserving subsequence")
	}
	for _, rec := range eligible {
		if !rec.Eligible() {
			t.Errorf("bank %q with tier %q should not be in the eligible view", rec.Bank.ID, rec.EligibilityTier)
		}
	}
}

func TestTop_ClampsBounds(t *testing.T) {
	svc := newTestRecommendationService([]*domain.Bank{bankNamed("only")})

	if got := len(svc.Top(testProfile(), 10)); got != 1 {
		t.Errorf("expected clamp to catalog size, got %d", got)
	}
	if got := len(svc.Top(testProfile(), -1)); got != 0 {
		t.Errorf("expected empty slice for negative n, got %d", got)
	}
}

func TestEvaluate_SummaryCountsMatch(t *testing.T) {
	strict := bankNamed("strict")
	strict.HomeLoanCriteria.MinIncome = 500000
	strict.HomeLoanCriteria.MinCreditScore = 800
	strict.HomeLoanCriteria.PropertyAreas = []string{domain.AreaRural}
	strict.HomeLoanCriteria.MinAge = 50
	strict.HomeLoanCriteria.AcceptsSelfEmployed = false
	strict.HomeLoanCriteria.MaxLoanAmount = 200000

	svc := newTestRecommendationService([]*domain.Bank{bankNamed("easy"), strict})

	result := svc.Evaluate(testProfile())

	s := result.Summary
	if s.TotalBanks != 2 {
		t.Fatalf("expected 2 banks in summary, got %d", s.TotalBanks)
	}
	if got := s.HighlyEligible + s.Eligible + s.ConditionallyEligible + s.NotEligible; got != s.TotalBanks {
		t.Errorf("tier counts sum to %d, want %d", got, s.TotalBanks)
	}
	if len(result.Recommendations) != 2 {
		t.Errorf("expected all recommendations in result, got %d", len(result.Recommendations))
	}
	if result.Metrics.MarketEMI <= 0 {
		t.Errorf("expected market EMI to be computed")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	svc := newTestRecommendationService([]*domain.Bank{bankNamed("alpha"), bankNamed("beta")})

	profile := testProfile()
	first := svc.Evaluate(profile)
	second := svc.Evaluate(profile) // served from cache

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation of the same profile must be identical")
	}
}
