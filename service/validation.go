package service

import (
	"errors"
	"fmt"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

// ValidateProfile rejects malformed applicant profiles at the boundary. The
// scoring engine assumes well-typed input and does not re-validate.
func ValidateProfile(p domain.ApplicantProfile) error {
	if p.Age <= 0 {
		return errors.New("invalid age")
	}
	if p.Age > MaxApplicantAge {
		return fmt.Errorf("age exceeds the maximum of %d", MaxApplicantAge)
	}
	if p.Income <= 0 {
		return errors.New("invalid income")
	}
	if p.CoapplicantIncome < 0 {
		return errors.New("invalid co-applicant income")
	}
	if p.CreditHistory != 0 && p.CreditHistory != 1 {
		return errors.New("credit history must be 0 or 1")
	}
	if !domain.KnownPropertyArea(p.PropertyArea) {
		return fmt.Errorf("unknown property area %q", p.PropertyArea)
	}
	if p.LoanAmount <= 0 {
		return errors.New("invalid loan amount")
	}
	if p.LoanAmount > MaxLoanAmount {
		return fmt.Errorf("loan amount exceeds the maximum of %.0f", MaxLoanAmount)
	}
	if p.LoanTerm <= 0 {
		return errors.New("invalid loan term")
	}
	if p.LoanTerm > MaxTermMonths {
		return fmt.Errorf("loan term exceeds the maximum of %d months", MaxTermMonths)
	}
	return nil
}
