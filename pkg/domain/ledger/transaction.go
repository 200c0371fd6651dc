package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifies what a transaction entry did to the balance.
// Transfer legs carry their own kinds so downstream consumers can tell
// transfer-induced movements apart from direct deposits and withdrawals.
type Kind string

// Transaction kinds.
const (
	KindDeposit     Kind = "DEPOSIT"
	KindWithdraw    Kind = "WITHDRAW"
	KindTransferOut Kind = "TRANSFER_OUT"
	KindTransferIn  Kind = "TRANSFER_IN"
)

// Transaction is one immutable record of a balance change. It is owned
// exclusively by its account's history, which is append-only; once appended
// an entry is never modified or deleted.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	Kind          Kind            `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Timestamp     time.Time       `json:"timestamp"`
	Category      Category        `json:"category"`
}

// NewTransaction creates an entry with a fresh ID and the category derived
// from the description. The amount must be strictly positive; the sign
// convention lives in the Kind (see Signed).
func NewTransaction(accountNumber string, kind Kind, amount decimal.Decimal, description string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}
	return &Transaction{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Description:   description,
		Timestamp:     time.Now(),
		Category:      Categorize(description),
	}, nil
}

// NewTransactionFromData rebuilds an entry from raw data, trusting the
// caller to supply a positive amount. It bypasses the usual creation path
// and should only be used for seeding and test fixtures. The category is
// still derived from the description, as at creation time.
func NewTransactionFromData(
	id uuid.UUID,
	accountNumber string,
	kind Kind,
	amount decimal.Decimal,
	description string,
	timestamp time.Time,
) *Transaction {
	return &Transaction{
		ID:            id,
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Description:   description,
		Timestamp:     timestamp,
		Category:      Categorize(description),
	}
}

// Signed returns the entry's contribution to the account balance:
// deposits and transfer-ins count positive, withdrawals and transfer-outs
// negative.
func (t *Transaction) Signed() decimal.Decimal {
	switch t.Kind {
	case KindWithdraw, KindTransferOut:
		return t.Amount.Neg()
	default:
		return t.Amount
	}
}
