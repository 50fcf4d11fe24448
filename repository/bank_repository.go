package repository

import "github.com/sooryathamilselvan/LoanPrediction/domain"

// BankRepository is the read contract for the static bank catalog.
// Implementations must be safe for concurrent readers.
type BankRepository interface {
	GetByID(id string) (*domain.Bank, bool)
	All() []*domain.Bank
}
