package account

import (
	ledgersvc "github.com/fastbank/bankingapi/pkg/service/ledger"
	"github.com/fastbank/bankingapi/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

// Routes registers the account and money-movement endpoints.
//
//   - POST /api/login                                  : look up an account by number
//   - POST /api/accounts                               : create a new account
//   - GET  /api/accounts                               : list all accounts
//   - POST /api/accounts/:accountNumber/deposit        : deposit funds
//   - POST /api/accounts/:accountNumber/withdraw       : withdraw funds
//   - POST /api/accounts/transfer                      : transfer between accounts
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service) {
	api := app.Group("/api")
	api.Post("/login", Login(ledgerSvc))
	api.Post("/accounts", CreateAccount(ledgerSvc))
	api.Get("/accounts", ListAccounts(ledgerSvc))
	api.Post("/accounts/transfer", Transfer(ledgerSvc))
	api.Post("/accounts/:accountNumber/deposit", Deposit(ledgerSvc))
	api.Post("/accounts/:accountNumber/withdraw", Withdraw(ledgerSvc))
}

// Login returns a handler that resolves an account number to its account,
// or 404 when no such account exists.
func Login(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if err != nil {
			return nil // error response already written
		}
		account, err := ledgerSvc.GetAccount(c.Context(), input.AccountNumber)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Login failed", err.Error())
		}
		return c.JSON(account)
	}
}

// CreateAccount returns a handler that creates a new account for the given
// owner name and responds with the created account.
func CreateAccount(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if err != nil {
			return nil // error response already written
		}
		account, err := ledgerSvc.CreateAccount(c.Context(), input.OwnerName)
		if err != nil {
			log.Errorf("failed to create account: %v", err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to create account", err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(account)
	}
}

// ListAccounts returns a handler that lists all accounts.
func ListAccounts(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ledgerSvc.ListAccounts(c.Context()))
	}
}

// Deposit returns a handler that credits the account named in the URL with
// the amount from the request body and responds with the updated account.
func Deposit(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountNumber := c.Params("accountNumber")
		input, err := common.BindAndValidate[TransactionRequest](c)
		if err != nil {
			return nil // error response already written
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		account, err := ledgerSvc.Deposit(c.Context(), accountNumber, amount, input.Description)
		if err != nil {
			log.Errorf("deposit failed for account %s: %v", accountNumber, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Deposit failed", err.Error())
		}
		return c.JSON(account)
	}
}

// Withdraw returns a handler that debits the account named in the URL with
// the amount from the request body and responds with the updated account.
func Withdraw(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountNumber := c.Params("accountNumber")
		input, err := common.BindAndValidate[TransactionRequest](c)
		if err != nil {
			return nil // error response already written
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		account, err := ledgerSvc.Withdraw(c.Context(), accountNumber, amount, input.Description)
		if err != nil {
			log.Errorf("withdrawal failed for account %s: %v", accountNumber, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Withdrawal failed", err.Error())
		}
		return c.JSON(account)
	}
}

// Transfer returns a handler that moves funds between the two accounts named
// in the request body. A successful transfer responds with 204 No Content.
func Transfer(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if err != nil {
			return nil // error response already written
		}
		amount, err := decimal.NewFromString(input.Amount)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		if err := ledgerSvc.Transfer(
			c.Context(),
			input.FromAccountNumber,
			input.ToAccountNumber,
			amount,
			input.Description,
		); err != nil {
			log.Errorf("transfer failed from %s to %s: %v", input.FromAccountNumber, input.ToAccountNumber, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Transfer failed", err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
