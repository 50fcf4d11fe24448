package http

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sooryathamilselvan/LoanPrediction/domain"
	"github.com/sooryathamilselvan/LoanPrediction/repository"
)

// BankHandler serves catalog lookups.
type BankHandler struct {
	banks  repository.BankRepository
	logger *zap.Logger
}

func NewBankHandler(banks repository.BankRepository, logger *zap.Logger) *BankHandler {
	return &BankHandler{banks: banks, logger: logger}
}

type loanProductView struct {
	Criteria domain.BankCriteria `json:"criteria"`
	Features []string            `json:"features"`
}

type bankDetailsResponse struct {
	Bank         *domain.Bank               `json:"bank"`
	LoanProducts map[string]loanProductView `json:"loanProducts"`
}

// Details handles GET /loan/banks/{id}.
func (h *BankHandler) Details(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/loan/banks/"), "/")
	if id == "" {
		http.Error(w, "bank id is required", http.StatusBadRequest)
		return
	}

	bank, ok := h.banks.GetByID(id)
	if !ok {
		http.Error(w, "bank not found", http.StatusNotFound)
		return
	}

	response := bankDetailsResponse{
		Bank: bank,
		LoanProducts: map[string]loanProductView{
			"homeLoan": {
				Criteria: bank.HomeLoanCriteria,
				Features: homeLoanFeatures(bank.HomeLoanCriteria),
			},
			"personalLoan": {
				Criteria: bank.PersonalLoanCriteria,
				Features: personalLoanFeatures(bank.PersonalLoanCriteria),
			},
			"businessLoan": {
				Criteria: bank.BusinessLoanCriteria,
				Features: businessLoanFeatures(bank.BusinessLoanCriteria),
			},
		},
	}

	writeJSON(w, h.logger, response)
}

func homeLoanFeatures(c domain.BankCriteria) []string {
	return []string{
		fmt.Sprintf("Interest rates from %.2f%% to %.2f%%", c.InterestRateRange.Min, c.InterestRateRange.Max),
		fmt.Sprintf("Loan amount up to ₹%.1f crores", c.MaxLoanAmount/10000000),
		fmt.Sprintf("Processing time: %s", c.ProcessingTime),
		fmt.Sprintf("LTV ratio up to %.0f%%", c.MaxLTVRatio),
	}
}

func personalLoanFeatures(c domain.BankCriteria) []string {
	return []string{
		fmt.Sprintf("Interest rates from %.2f%% to %.2f%%", c.InterestRateRange.Min, c.InterestRateRange.Max),
		fmt.Sprintf("Loan amount up to ₹%.1f lakhs", c.MaxLoanAmount/100000),
		fmt.Sprintf("Processing time: %s", c.ProcessingTime),
		"No collateral required",
	}
}

func businessLoanFeatures(c domain.BankCriteria) []string {
	return []string{
		fmt.Sprintf("Interest rates from %.2f%% to %.2f%%", c.InterestRateRange.Min, c.InterestRateRange.Max),
		fmt.Sprintf("Loan amount up to ₹%.1f crores", c.MaxLoanAmount/10000000),
		fmt.Sprintf("Processing time: %s", c.ProcessingTime),
		"Flexible repayment options",
	}
}
