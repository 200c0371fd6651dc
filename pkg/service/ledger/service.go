// Package ledger provides the business logic for account creation and money
// movement. All mutating operations go through a single Service, which is the
// only writer of account state: it reads a snapshot from the repository,
// applies the domain operation, and stores the result back. A failed
// operation never reaches the store, so stored state is unchanged on error.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fastbank/bankingapi/pkg/domain/ledger"
	"github.com/fastbank/bankingapi/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service exposes account creation, lookups and the three money-movement
// operations over a shared account repository.
type Service struct {
	repo   repository.AccountRepository
	logger *slog.Logger

	// mu serialises all mutating operations. A single coarse lock keeps the
	// read-modify-write sequence atomic per account and lets transfer touch
	// two accounts without any lock-ordering concerns.
	mu sync.Mutex
}

// NewService creates a Service backed by the given repository.
func NewService(repo repository.AccountRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateAccount creates and stores a new account with zero balance and an
// empty history.
func (s *Service) CreateAccount(ctx context.Context, ownerName string) (*ledger.Account, error) {
	account := ledger.NewAccount(ownerName)
	s.repo.Save(account)
	s.logger.Info("account created",
		"accountNumber", account.AccountNumber,
		"ownerName", ownerName,
	)
	return account, nil
}

// GetAccount returns a snapshot of the account with the given number.
func (s *Service) GetAccount(ctx context.Context, accountNumber string) (*ledger.Account, error) {
	account, ok := s.repo.Get(accountNumber)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return account, nil
}

// ListAccounts returns snapshots of all accounts.
func (s *Service) ListAccounts(ctx context.Context) []*ledger.Account {
	return s.repo.List()
}

// Deposit credits the account and records a Deposit entry. The amount must
// be positive and the account must exist.
func (s *Service) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.repo.Get(accountNumber)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	tx, err := account.Deposit(amount, description)
	if err != nil {
		return nil, err
	}
	s.repo.Save(account)
	s.logger.Info("deposit recorded",
		"accountNumber", accountNumber,
		"amount", amount.String(),
		"transactionID", tx.ID,
		"category", tx.Category,
	)
	return account, nil
}

// Withdraw debits the account and records a Withdraw entry. It fails with
// ErrInsufficientFunds when the balance does not cover the amount; the
// stored account is left unchanged on any failure.
func (s *Service) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.repo.Get(accountNumber)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	tx, err := account.Withdraw(amount, description)
	if err != nil {
		s.logger.Warn("withdrawal rejected",
			"accountNumber", accountNumber,
			"amount", amount.String(),
			"error", err,
		)
		return nil, err
	}
	s.repo.Save(account)
	s.logger.Info("withdrawal recorded",
		"accountNumber", accountNumber,
		"amount", amount.String(),
		"transactionID", tx.ID,
		"category", tx.Category,
	)
	return account, nil
}

// Transfer moves amount from one account to another as a TransferOut leg
// followed by a TransferIn leg, each with its description annotated with the
// other side. Both accounts are checked before anything is mutated; if the
// debit leg fails nothing is stored. Both legs commit under the same
// critical section, so no other mutation interleaves between them.
func (s *Service) Transfer(ctx context.Context, fromAccountNumber, toAccountNumber string, amount decimal.Decimal, description string) error {
	if fromAccountNumber == toAccountNumber {
		return ledger.ErrSameAccountTransfer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.repo.Get(fromAccountNumber)
	if !ok {
		return ledger.ErrSourceAccountNotFound
	}
	destination, ok := s.repo.Get(toAccountNumber)
	if !ok {
		return ledger.ErrDestinationAccountNotFound
	}

	outTx, err := source.TransferOut(amount, fmt.Sprintf("Transfer to %s: %s", toAccountNumber, description))
	if err != nil {
		s.logger.Warn("transfer rejected",
			"fromAccountNumber", fromAccountNumber,
			"toAccountNumber", toAccountNumber,
			"amount", amount.String(),
			"error", err,
		)
		return err
	}
	// The credit leg cannot fail past this point: the amount was already
	// validated positive by the debit leg.
	inTx, err := destination.TransferIn(amount, fmt.Sprintf("Transfer from %s: %s", fromAccountNumber, description))
	if err != nil {
		return err
	}

	s.repo.Save(source)
	s.repo.Save(destination)
	s.logger.Info("transfer recorded",
		"fromAccountNumber", fromAccountNumber,
		"toAccountNumber", toAccountNumber,
		"amount", amount.String(),
		"outTransactionID", outTx.ID,
		"inTransactionID", inTx.ID,
	)
	return nil
}
