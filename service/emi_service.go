package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// EMIService computes fixed-installment repayment figures with the standard
// amortization formula. Every EMI shown anywhere in the system comes from
// this one implementation so displayed figures stay consistent.
type EMIService struct{}

func NewEMIService() *EMIService {
	return &EMIService{}
}

// CalculateEMI returns the monthly installment for the given principal,
// annual rate (percent) and term, rounded to the nearest rupee. A zero rate
// degenerates to straight principal division.
func (s *EMIService) CalculateEMI(principal, annualRate float64, termMonths int) (float64, error) {
	if principal <= 0 {
		return 0, errors.New("principal must be positive")
	}
	if principal > MaxLoanAmount {
		return 0, fmt.Errorf("principal exceeds the maximum of %.0f", MaxLoanAmount)
	}
	if annualRate < 0 {
		return 0, errors.New("interest rate must not be negative")
	}
	if annualRate > MaxInterestRate {
		return 0, fmt.Errorf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if termMonths <= 0 {
		return 0, errors.New("term must be positive")
	}
	if termMonths > MaxTermMonths {
		return 0, fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}

	if annualRate == 0 {
		return math.Round(principal / float64(termMonths)), nil
	}

	monthlyRate := annualRate / 1200
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	emi := principal * monthlyRate * factor / (factor - 1)

	return math.Round(emi), nil
}

// Metrics computes catalog-independent affordability figures for a profile
// using the flat market reference rate.
func (s *EMIService) Metrics(profile domain.ApplicantProfile) domain.ApplicantMetrics {
	totalIncome := profile.TotalIncome()
	if totalIncome <= 0 {
		return domain.ApplicantMetrics{}
	}

	marketEMI, err := s.CalculateEMI(profile.LoanAmount, MarketReferenceRate, profile.LoanTerm)
	if err != nil {
		return domain.ApplicantMetrics{}
	}

	return domain.ApplicantMetrics{
		LoanToIncomeRatio: roundTo2Decimals(profile.LoanAmount / (totalIncome * 12)),
		MarketEMI:         marketEMI,
		EMIToIncomeRatio:  roundTo2Decimals(marketEMI / totalIncome * 100),
	}
}
