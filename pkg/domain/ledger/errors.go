package ledger

import "errors"

var (
	// ErrAccountNotFound is returned when an account number does not resolve to a stored account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSourceAccountNotFound is returned when the debit side of a transfer does not exist.
	ErrSourceAccountNotFound = errors.New("source account not found")

	// ErrDestinationAccountNotFound is returned when the credit side of a transfer does not exist.
	ErrDestinationAccountNotFound = errors.New("destination account not found")

	// ErrInsufficientFunds is returned when a withdrawal or transfer would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAmountMustBePositive is returned when an operation amount is zero or negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrSameAccountTransfer is returned when a transfer names the same account on both sides.
	ErrSameAccountTransfer = errors.New("cannot transfer to same account")
)
