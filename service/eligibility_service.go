package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

// EligibilityService scores one applicant against one bank's criteria. It is
// pure: no I/O, no retained state, no failure paths for validated input.
type EligibilityService struct {
	emi *EMIService
}

func NewEligibilityService(emi *EMIService) *EligibilityService {
	return &EligibilityService{emi: emi}
}

// Score runs the seven weighted checks and classifies the result. Each check
// contributes points only on success and records a reason or an improvement
// gap either way, so a single recommendation can carry both.
func (s *EligibilityService) Score(profile domain.ApplicantProfile, bank *domain.Bank) domain.Recommendation {
	criteria := bank.CriteriaFor(profile.LoanCategory)
	totalIncome := profile.TotalIncome()

	matchScore := 0
	var reasons, improvements []domain.Finding

	// Age: 15 points.
	if profile.Age >= criteria.MinAge && profile.Age <= criteria.MaxAge {
		matchScore += AgeWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeAge, Message: "Age requirement met"})
	} else {
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodeAge,
			Message: fmt.Sprintf("Age should be between %d and %d years", criteria.MinAge, criteria.MaxAge),
		})
	}

	// Income: 20 points, on total household income.
	if totalIncome >= criteria.MinIncome {
		matchScore += IncomeWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeIncome, Message: "Income requirement satisfied"})
	} else {
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodeIncome,
			Message: fmt.Sprintf("Minimum income required: ₹%s", formatINR(criteria.MinIncome)),
		})
	}

	// Credit: 25 points on the score proxy, or a reduced 15 when the bank
	// admits applicants without credit history.
	creditScoreProxy := PoorCreditScoreProxy
	if profile.CreditHistory == 1 {
		creditScoreProxy = GoodCreditScoreProxy
	}
	switch {
	case creditScoreProxy >= criteria.MinCreditScore:
		matchScore += CreditWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeCredit, Message: "Credit score meets requirements"})
	case criteria.AcceptsNoCredit && profile.CreditHistory == 0:
		matchScore += NoCreditPartialWeight
		reasons = append(reasons, domain.Finding{
			Code:    domain.CodeNoCredit,
			Message: "Bank accepts applications with limited credit history",
		})
	default:
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodeCredit,
			Message: fmt.Sprintf("Minimum credit score required: %d", criteria.MinCreditScore),
		})
	}

	// Loan amount: 15 points, with the violated bound named on failure.
	switch {
	case profile.LoanAmount >= criteria.MinLoanAmount && profile.LoanAmount <= criteria.MaxLoanAmount:
		matchScore += LoanAmountWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeLoanAmount, Message: "Loan amount within bank limits"})
	case profile.LoanAmount < criteria.MinLoanAmount:
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodeLoanAmount,
			Message: fmt.Sprintf("Minimum loan amount: ₹%s", formatINR(criteria.MinLoanAmount)),
		})
	default:
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodeLoanAmount,
			Message: fmt.Sprintf("Maximum loan amount: ₹%s", formatINR(criteria.MaxLoanAmount)),
		})
	}

	// Employment: 10 points. Only self-employed applicants at banks that do
	// not accept them score zero here.
	switch {
	case profile.SelfEmployed && criteria.AcceptsSelfEmployed:
		matchScore += EmploymentWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeEmployment, Message: "Self-employed applications accepted"})
	case profile.SelfEmployed:
		improvements = append(improvements, domain.Finding{Code: domain.CodeEmployment, Message: "Bank prefers salaried applicants"})
	default:
		matchScore += EmploymentWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeEmployment, Message: "Employment type suitable"})
	}

	// Property area: 10 points.
	if criteria.ServesArea(profile.PropertyArea) {
		matchScore += PropertyAreaWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodePropertyArea, Message: "Property area covered"})
	} else {
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodePropertyArea,
			Message: fmt.Sprintf("Bank operates in: %s areas", strings.Join(criteria.PropertyAreas, ", ")),
		})
	}

	// EMI ratio: 5 points, using this bank's midpoint rate. A zero total
	// income makes the ratio infinite and the check fails cleanly.
	estimatedRate := criteria.InterestRateRange.Midpoint()
	estimatedEMI, err := s.emi.CalculateEMI(profile.LoanAmount, estimatedRate, profile.LoanTerm)
	emiRatio := math.Inf(1)
	if err == nil {
		emiRatio = estimatedEMI / totalIncome * 100
	}
	if emiRatio <= criteria.MaxEMIRatio {
		matchScore += EMIRatioWeight
		reasons = append(reasons, domain.Finding{Code: domain.CodeEMIRatio, Message: "EMI to income ratio acceptable"})
	} else {
		improvements = append(improvements, domain.Finding{
			Code:    domain.CodeEMIRatio,
			Message: fmt.Sprintf("EMI ratio should be below %.0f%%", criteria.MaxEMIRatio),
		})
	}

	return domain.Recommendation{
		Bank:                  bank,
		MatchScore:            matchScore,
		EligibilityTier:       domain.TierForScore(matchScore),
		Reasons:               reasons,
		Improvements:          improvements,
		EstimatedInterestRate: estimatedRate,
		EstimatedEMI:          estimatedEMI,
	}
}

// formatINR renders a non-negative amount with Indian digit grouping,
// e.g. 2500000 -> "25,00,000".
func formatINR(amount float64) string {
	s := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	if len(s) <= 3 {
		return s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
