package account

// LoginRequest identifies an account by number for the login-style lookup.
type LoginRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
}

// CreateAccountRequest is the request body for creating a new account.
type CreateAccountRequest struct {
	OwnerName string `json:"ownerName" validate:"required,min=1,max=128"`
}

// TransactionRequest is the request body for deposits and withdrawals.
// Amount is a decimal string so values survive the wire exactly; it is
// parsed with shopspring/decimal, never through a float.
type TransactionRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required,max=256"`
}

// TransferRequest is the request body for transfers between two accounts.
type TransferRequest struct {
	FromAccountNumber string `json:"fromAccountNumber" validate:"required"`
	ToAccountNumber   string `json:"toAccountNumber" validate:"required"`
	Amount            string `json:"amount" validate:"required"`
	Description       string `json:"description" validate:"required,max=256"`
}
