// Package repository defines the persistence contracts used by the service
// layer. Implementations live under infra.
package repository

import "github.com/fastbank/bankingapi/pkg/domain/ledger"

// AccountRepository is the single authoritative registry of accounts, keyed
// by account number. All methods are safe for concurrent use and a Save is
// immediately visible to subsequent Get and Exists calls from any goroutine.
type AccountRepository interface {
	// Save inserts or replaces the stored account and returns the caller's
	// copy, which reflects the state just stored.
	Save(account *ledger.Account) *ledger.Account
	// Get returns a snapshot of the account, or false when no account with
	// that number exists.
	Get(accountNumber string) (*ledger.Account, bool)
	// List returns snapshots of all accounts in unspecified order.
	List() []*ledger.Account
	// Exists reports whether an account with the given number is stored.
	Exists(accountNumber string) bool
}
