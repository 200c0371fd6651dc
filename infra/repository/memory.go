// Package repository provides the in-memory account store.
package repository

import (
	"sync"

	"github.com/fastbank/bankingapi/pkg/domain/ledger"
	"github.com/fastbank/bankingapi/pkg/repository"
)

// MemoryAccountRepository keeps accounts in a map guarded by an RWMutex.
// It stores and hands out deep clones, so readers never observe a partially
// updated account and no caller can mutate authoritative state in place.
// Each per-key replace is atomic; lookups after a Save see the new state.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*ledger.Account
}

var _ repository.AccountRepository = (*MemoryAccountRepository)(nil)

// NewMemoryAccountRepository creates an empty store.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]*ledger.Account),
	}
}

// Save inserts or replaces the stored account and returns the caller's copy.
func (r *MemoryAccountRepository) Save(account *ledger.Account) *ledger.Account {
	stored := account.Clone()
	r.mu.Lock()
	r.accounts[stored.AccountNumber] = stored
	r.mu.Unlock()
	return account
}

// Get returns a snapshot of the account with the given number.
func (r *MemoryAccountRepository) Get(accountNumber string) (*ledger.Account, bool) {
	r.mu.RLock()
	account, ok := r.accounts[accountNumber]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return account.Clone(), true
}

// List returns snapshots of all stored accounts in unspecified order.
func (r *MemoryAccountRepository) List() []*ledger.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	accounts := make([]*ledger.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account.Clone())
	}
	return accounts
}

// Exists reports whether an account with the given number is stored.
func (r *MemoryAccountRepository) Exists(accountNumber string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accounts[accountNumber]
	return ok
}
