package repository

import "github.com/sooryathamilselvan/LoanPrediction/domain"

// BankRepositoryMemory holds the bank catalog in memory. The catalog is
// loaded once and never mutated, so reads need no locking.
type BankRepositoryMemory struct {
	banks []*domain.Bank
	byID  map[string]*domain.Bank
}

// NewBankRepositoryMemory creates a repository seeded with the built-in
// Indian bank catalog.
func NewBankRepositoryMemory() *BankRepositoryMemory {
	return NewBankRepositoryMemoryFrom(defaultBanks())
}

// NewBankRepositoryMemoryFrom creates a repository over the provided banks.
// The slice order is the catalog order used for ranking tie-breaks.
func NewBankRepositoryMemoryFrom(banks []*domain.Bank) *BankRepositoryMemory {
	byID := make(map[string]*domain.Bank, len(banks))
	for _, b := range banks {
		byID[b.ID] = b
	}
	return &BankRepositoryMemory{banks: banks, byID: byID}
}

// GetByID looks up a single bank by its identifier.
func (r *BankRepositoryMemory) GetByID(id string) (*domain.Bank, bool) {
	b, ok := r.byID[id]
	return b, ok
}

// All returns the catalog in its canonical order.
func (r *BankRepositoryMemory) All() []*domain.Bank {
	out := make([]*domain.Bank, len(r.banks))
	copy(out, r.banks)
	return out
}
