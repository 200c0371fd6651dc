// Package ledger holds the core accounting model: accounts, their immutable
// transaction histories, and the rule-based categorizer.
//
// Invariants:
//   - An account's balance equals the signed sum of its entries and is never
//     negative after a completed operation.
//   - Histories are append-only and chronologically ordered.
//   - State changes go through the ledger service; external callers only ever
//     hold snapshots.
package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Account is the aggregate root for a customer's balance and its history of
// changes. The account number doubles as the store key and is never
// reassigned.
type Account struct {
	AccountNumber string          `json:"accountNumber"`
	OwnerName     string          `json:"ownerName"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	Transactions  []*Transaction  `json:"transactions"`
}

// NewAccount creates an account with a fresh account number, zero balance
// and an empty history.
func NewAccount(ownerName string) *Account {
	return &Account{
		AccountNumber: generateAccountNumber(),
		OwnerName:     ownerName,
		Balance:       decimal.Zero,
		CreatedAt:     time.Now(),
		Transactions:  []*Transaction{},
	}
}

// generateAccountNumber combines a millisecond timestamp with a random
// component so collisions are negligible without any coordination.
func generateAccountNumber() string {
	return fmt.Sprintf("ACC%d%06d", time.Now().UnixMilli(), rand.Intn(1_000_000))
}

// Deposit credits the account and appends a Deposit entry.
func (a *Account) Deposit(amount decimal.Decimal, description string) (*Transaction, error) {
	return a.credit(KindDeposit, amount, description)
}

// Withdraw debits the account and appends a Withdraw entry. It fails with
// ErrInsufficientFunds when the balance would go negative, leaving the
// account untouched.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (*Transaction, error) {
	return a.debit(KindWithdraw, amount, description)
}

// TransferIn credits the account as the receiving leg of a transfer.
func (a *Account) TransferIn(amount decimal.Decimal, description string) (*Transaction, error) {
	return a.credit(KindTransferIn, amount, description)
}

// TransferOut debits the account as the sending leg of a transfer.
func (a *Account) TransferOut(amount decimal.Decimal, description string) (*Transaction, error) {
	return a.debit(KindTransferOut, amount, description)
}

func (a *Account) credit(kind Kind, amount decimal.Decimal, description string) (*Transaction, error) {
	tx, err := NewTransaction(a.AccountNumber, kind, amount, description)
	if err != nil {
		return nil, err
	}
	a.Balance = a.Balance.Add(amount)
	a.append(tx)
	return tx, nil
}

func (a *Account) debit(kind Kind, amount decimal.Decimal, description string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	if a.Balance.LessThan(amount) {
		return nil, ErrInsufficientFunds
	}
	tx, err := NewTransaction(a.AccountNumber, kind, amount, description)
	if err != nil {
		return nil, err
	}
	a.Balance = a.Balance.Sub(amount)
	a.append(tx)
	return tx, nil
}

// append keeps the history chronologically ordered even if the wall clock
// steps backwards between entries.
func (a *Account) append(tx *Transaction) {
	if n := len(a.Transactions); n > 0 {
		if last := a.Transactions[n-1].Timestamp; tx.Timestamp.Before(last) {
			tx.Timestamp = last
		}
	}
	a.Transactions = append(a.Transactions, tx)
}

// Clone returns a deep copy of the account. The store hands out clones so no
// caller can alias the authoritative state.
func (a *Account) Clone() *Account {
	cp := *a
	cp.Transactions = make([]*Transaction, len(a.Transactions))
	for i, tx := range a.Transactions {
		entry := *tx
		cp.Transactions[i] = &entry
	}
	return &cp
}

// NetSum folds the signed amounts of all entries. It always equals Balance;
// tests use it to check the ledger invariant.
func (a *Account) NetSum() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range a.Transactions {
		sum = sum.Add(tx.Signed())
	}
	return sum
}
