package domain

// EligibilityTier classifies a match score. Tiers are ordered:
// Highly Eligible > Eligible > Conditionally Eligible > Not Eligible.
type EligibilityTier string

const (
	TierHighlyEligible        EligibilityTier = "Highly Eligible"
	TierEligible              EligibilityTier = "Eligible"
	TierConditionallyEligible EligibilityTier = "Conditionally Eligible"
	TierNotEligible           EligibilityTier = "Not Eligible"
)

// Tier thresholds on the 0-100 match score, evaluated highest first.
const (
	highlyEligibleScore        = 85
	eligibleScore              = 70
	conditionallyEligibleScore = 50
)

// TierForScore maps a match score onto its eligibility tier.
func TierForScore(score int) EligibilityTier {
	switch {
	case score >= highlyEligibleScore:
		return TierHighlyEligible
	case score >= eligibleScore:
		return TierEligible
	case score >= conditionallyEligibleScore:
		return TierConditionallyEligible
	default:
		return TierNotEligible
	}
}

// FindingCode identifies which eligibility check produced a finding,
// independent of the human-facing wording.
type FindingCode string

const (
	CodeAge          FindingCode = "age"
	CodeIncome       FindingCode = "income"
	CodeCredit       FindingCode = "credit"
	CodeNoCredit     FindingCode = "no_credit_accepted"
	CodeLoanAmount   FindingCode = "loan_amount"
	CodeEmployment   FindingCode = "employment"
	CodePropertyArea FindingCode = "property_area"
	CodeEMIRatio     FindingCode = "emi_ratio"
)

// Finding is a single satisfied reason or improvement gap: a stable machine
// code plus the display message shown to the applicant.
type Finding struct {
	Code    FindingCode `json:"code"`
	Message string      `json:"message"`
}

// Messages extracts the display strings from a finding list.
func Messages(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

// Recommendation is the result of scoring one applicant against one bank.
// It is created fresh per evaluation and never mutated afterwards.
type Recommendation struct {
	Bank                  *Bank           `json:"bank"`
	MatchScore            int             `json:"matchScore"`
	EligibilityTier       EligibilityTier `json:"eligibilityTier"`
	Reasons               []Finding       `json:"reasons"`
	Improvements          []Finding       `json:"improvements"`
	EstimatedInterestRate float64         `json:"estimatedInterestRate"`
	EstimatedEMI          float64         `json:"estimatedEMI"`
}

// Eligible reports whether the recommendation falls in one of the two top
// tiers.
func (r Recommendation) Eligible() bool {
	return r.EligibilityTier == TierHighlyEligible || r.EligibilityTier == TierEligible
}

// TierSummary counts recommendations per tier across one evaluation.
type TierSummary struct {
	TotalBanks            int `json:"totalBanks"`
	HighlyEligible        int `json:"highlyEligibleCount"`
	Eligible              int `json:"eligibleCount"`
	ConditionallyEligible int `json:"conditionallyEligibleCount"`
	NotEligible           int `json:"notEligibleCount"`
}

// ApplicantMetrics are profile-level affordability figures computed with the
// flat market reference rate, independent of any single bank.
type ApplicantMetrics struct {
	LoanToIncomeRatio float64 `json:"loanToIncomeRatio"`
	MarketEMI         float64 `json:"monthlyEMI"`
	EMIToIncomeRatio  float64 `json:"emiToIncomeRatio"`
}

// EvaluationResult is the full output of one engine run: the echoed profile,
// the canonical ranked recommendation sequence, tier counts, affordability
// metrics and the synthesized improvement suggestions.
type EvaluationResult struct {
	Profile         ApplicantProfile `json:"userProfile"`
	Summary         TierSummary      `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	Metrics         ApplicantMetrics `json:"metrics"`
	Suggestions     []string         `json:"improvementSuggestions"`
}
