package service

const (
	// Weights of the seven eligibility checks. They sum to 100, so the
	// match score is 0-100 by construction.
	AgeWeight          = 15
	IncomeWeight       = 20
	CreditWeight       = 25
	LoanAmountWeight   = 15
	EmploymentWeight   = 10
	PropertyAreaWeight = 10
	EMIRatioWeight     = 5

	// Reduced credit points for banks that admit applicants without a
	// credit history.
	NoCreditPartialWeight = 15

	// Credit score proxies on the 300-900 scale, derived from the binary
	// credit history indicator.
	GoodCreditScoreProxy = 750
	PoorCreditScoreProxy = 600

	// Input caps enforced at the boundary.
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0
	MaxTermMonths   = 600
	MaxApplicantAge = 120

	// Flat annual rate used for catalog-independent affordability metrics.
	MarketReferenceRate = 8.5
)

const (
	// Improvement synthesis: how many frequency-ranked gaps to surface,
	// and the profile-derived heuristic triggers.
	TopSuggestionCount = 5

	CoapplicantIncomeThreshold = 30000.0

	// Cheap EMI-to-income proxy: loanAmount * 0.008 approximates a monthly
	// installment. Deliberately looser than the per-bank midpoint-rate EMI.
	EMIProxyFactor     = 0.008
	EMIProxyRatioLimit = 40.0
)
