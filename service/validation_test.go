package service

import (
	"testing"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
)

func validProfile() domain.ApplicantProfile {
	return domain.ApplicantProfile{
		Age:           30,
		Income:        45000,
		CreditHistory: 1,
		PropertyArea:  domain.AreaUrban,
		LoanAmount:    2_000_000,
		LoanTerm:      240,
		LoanCategory:  domain.CategoryHome,
	}
}

func TestValidateProfile_Valid(t *testing.T) {
	if err := ValidateProfile(validProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateProfile_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.ApplicantProfile)
	}{
		{"zero age", func(p *domain.ApplicantProfile) { p.Age = 0 }},
		{"excessive age", func(p *domain.ApplicantProfile) { p.Age = MaxApplicantAge + 1 }},
		{"zero income", func(p *domain.ApplicantProfile) { p.Income = 0 }},
		{"negative coapplicant income", func(p *domain.ApplicantProfile) { p.CoapplicantIncome = -1 }},
		{"bad credit history", func(p *domain.ApplicantProfile) { p.CreditHistory = 2 }},
		{"unknown property area", func(p *domain.ApplicantProfile) { p.PropertyArea = "Metro" }},
		{"zero loan amount", func(p *domain.ApplicantProfile) { p.LoanAmount = 0 }},
		{"excessive loan amount", func(p *domain.ApplicantProfile) { p.LoanAmount = MaxLoanAmount + 1 }},
		{"zero term", func(p *domain.ApplicantProfile) { p.LoanTerm = 0 }},
		{"excessive term", func(p *domain.ApplicantProfile) { p.LoanTerm = MaxTermMonths + 1 }},
	}

	for _, c := range cases {
		p := validProfile()
		c.mutate(&p)
		if err := ValidateProfile(p); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
