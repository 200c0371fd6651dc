// Package seed creates demo accounts on startup so the API is usable
// immediately. Seeding is idempotent: an account number that already exists
// is left alone.
package seed

import (
	"log/slog"
	"time"

	"github.com/fastbank/bankingapi/pkg/domain/ledger"
	"github.com/fastbank/bankingapi/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type seedEntry struct {
	kind        ledger.Kind
	amount      string
	description string
	daysAgo     int
}

type seedAccount struct {
	accountNumber string
	ownerName     string
	createdDays   int
	entries       []seedEntry
}

var demoAccounts = []seedAccount{
	{
		accountNumber: "ACC1234567890",
		ownerName:     "John Doe",
		createdDays:   30,
		entries: []seedEntry{
			{ledger.KindDeposit, "2000.00", "Initial deposit", 30},
			{ledger.KindWithdraw, "300.00", "ATM withdrawal", 15},
			{ledger.KindDeposit, "800.00", "Salary deposit", 7},
			{ledger.KindWithdraw, "1000.00", "Rent payment", 3},
		},
	},
	{
		accountNumber: "ACC0987654321",
		ownerName:     "Jane Smith",
		createdDays:   45,
		entries: []seedEntry{
			{ledger.KindDeposit, "3000.00", "Initial deposit", 45},
			{ledger.KindTransferOut, "1500.00", "Transfer to savings", 20},
			{ledger.KindDeposit, "1200.00", "Freelance payment", 10},
			{ledger.KindWithdraw, "200.00", "Shopping", 5},
			{ledger.KindDeposit, "250.50", "Cashback bonus", 1},
		},
	},
}

// Demo stores the demo accounts, skipping any account number that already
// exists. Balances are derived from the seeded entries, so the ledger
// invariant holds for seeded data too.
func Demo(repo repository.AccountRepository, logger *slog.Logger) {
	now := time.Now()
	for _, sa := range demoAccounts {
		if repo.Exists(sa.accountNumber) {
			continue
		}
		account := &ledger.Account{
			AccountNumber: sa.accountNumber,
			OwnerName:     sa.ownerName,
			Balance:       decimal.Zero,
			CreatedAt:     now.AddDate(0, 0, -sa.createdDays),
			Transactions:  []*ledger.Transaction{},
		}
		for _, e := range sa.entries {
			amount := decimal.RequireFromString(e.amount)
			tx := ledger.NewTransactionFromData(
				uuid.New(),
				sa.accountNumber,
				e.kind,
				amount,
				e.description,
				now.AddDate(0, 0, -e.daysAgo),
			)
			account.Transactions = append(account.Transactions, tx)
			account.Balance = account.Balance.Add(tx.Signed())
		}
		repo.Save(account)
		logger.Info("demo account created",
			"accountNumber", account.AccountNumber,
			"ownerName", account.OwnerName,
			"balance", account.Balance.String(),
		)
	}
	logger.Info("demo data initialization completed")
}
