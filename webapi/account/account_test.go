package account_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	memoryrepo "github.com/fastbank/bankingapi/infra/repository"
	"github.com/fastbank/bankingapi/infra/seed"
	"github.com/fastbank/bankingapi/pkg/config"
	"github.com/fastbank/bankingapi/pkg/domain/ledger"
	ledgersvc "github.com/fastbank/bankingapi/pkg/service/ledger"
	"github.com/fastbank/bankingapi/webapi"
	"github.com/fastbank/bankingapi/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log.SetOutput(io.Discard)

	repo := memoryrepo.NewMemoryAccountRepository()
	seed.Demo(repo, slog.Default())
	svc := ledgersvc.NewService(repo, slog.Default())
	return webapi.NewApp(svc, &config.AppConfig{
		Server: config.ServerConfig{CORSOrigins: "http://localhost:3000"},
	})
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, payload
}

func TestCreateAccount(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/accounts", `{"ownerName":"Alice Example"}`)
	require.Equal(t, fiber.StatusCreated, status)

	var account ledger.Account
	require.NoError(t, json.Unmarshal(body, &account))
	assert.Equal(t, "Alice Example", account.OwnerName)
	assert.True(t, account.Balance.IsZero())
	assert.Regexp(t, `^ACC\d+$`, account.AccountNumber)
}

func TestCreateAccount_InvalidBody(t *testing.T) {
	app := setupTestApp(t)

	t.Run("missing owner name", func(t *testing.T) {
		status, body := doJSON(t, app, fiber.MethodPost, "/api/accounts", `{}`)
		require.Equal(t, fiber.StatusBadRequest, status)

		var pd common.ProblemDetails
		require.NoError(t, json.Unmarshal(body, &pd))
		assert.Equal(t, "Validation failed", pd.Title)
		assert.Equal(t, fiber.StatusBadRequest, pd.Status)
	})

	t.Run("malformed json", func(t *testing.T) {
		status, body := doJSON(t, app, fiber.MethodPost, "/api/accounts", `not-json`)
		require.Equal(t, fiber.StatusBadRequest, status)

		var pd common.ProblemDetails
		require.NoError(t, json.Unmarshal(body, &pd))
		assert.Equal(t, "Invalid request body", pd.Title)
	})
}

func TestListAccounts(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodGet, "/api/accounts", "")
	require.Equal(t, fiber.StatusOK, status)

	var accounts []ledger.Account
	require.NoError(t, json.Unmarshal(body, &accounts))
	assert.Len(t, accounts, 2) // demo accounts
}

func TestLogin(t *testing.T) {
	app := setupTestApp(t)

	t.Run("known account", func(t *testing.T) {
		status, body := doJSON(t, app, fiber.MethodPost, "/api/login", `{"accountNumber":"ACC1234567890"}`)
		require.Equal(t, fiber.StatusOK, status)

		var account ledger.Account
		require.NoError(t, json.Unmarshal(body, &account))
		assert.Equal(t, "John Doe", account.OwnerName)
	})

	t.Run("unknown account", func(t *testing.T) {
		status, _ := doJSON(t, app, fiber.MethodPost, "/api/login", `{"accountNumber":"ACC000"}`)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestDeposit(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/accounts/ACC1234567890/deposit",
		`{"amount":"250.75","description":"Grocery refund at supermarket"}`)
	require.Equal(t, fiber.StatusOK, status)

	var account ledger.Account
	require.NoError(t, json.Unmarshal(body, &account))
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1750.75")), "balance is %s", account.Balance)
	last := account.Transactions[len(account.Transactions)-1]
	assert.Equal(t, ledger.KindDeposit, last.Kind)
	assert.Equal(t, ledger.CategoryFood, last.Category)
}

func TestDeposit_Errors(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"unknown account", "/api/accounts/ACC000/deposit", `{"amount":"10.00","description":"d"}`, fiber.StatusNotFound},
		{"malformed amount", "/api/accounts/ACC1234567890/deposit", `{"amount":"ten","description":"d"}`, fiber.StatusBadRequest},
		{"negative amount", "/api/accounts/ACC1234567890/deposit", `{"amount":"-10.00","description":"d"}`, fiber.StatusBadRequest},
		{"missing description", "/api/accounts/ACC1234567890/deposit", `{"amount":"10.00"}`, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, app, fiber.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestWithdraw(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/accounts/ACC1234567890/withdraw",
		`{"amount":"500.00","description":"Rent payment"}`)
	require.Equal(t, fiber.StatusOK, status)

	var account ledger.Account
	require.NoError(t, json.Unmarshal(body, &account))
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1000.00")), "balance is %s", account.Balance)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	app := setupTestApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/accounts/ACC1234567890/withdraw",
		`{"amount":"99999.00","description":"raid"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var pd common.ProblemDetails
	require.NoError(t, json.Unmarshal(body, &pd))
	assert.Contains(t, pd.Detail, "insufficient funds")
}

func TestTransfer(t *testing.T) {
	app := setupTestApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/accounts/transfer",
		`{"fromAccountNumber":"ACC1234567890","toAccountNumber":"ACC0987654321","amount":"100.00","description":"Dinner split"}`)
	require.Equal(t, fiber.StatusNoContent, status)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/login", `{"accountNumber":"ACC0987654321"}`)
	require.Equal(t, fiber.StatusOK, status)

	var jane ledger.Account
	require.NoError(t, json.Unmarshal(body, &jane))
	assert.True(t, jane.Balance.Equal(decimal.RequireFromString("2850.50")), "balance is %s", jane.Balance)
	last := jane.Transactions[len(jane.Transactions)-1]
	assert.Equal(t, ledger.KindTransferIn, last.Kind)
	assert.Equal(t, fmt.Sprintf("Transfer from %s: Dinner split", "ACC1234567890"), last.Description)
}

func TestTransfer_Errors(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{
			"missing source",
			`{"fromAccountNumber":"ACC000","toAccountNumber":"ACC0987654321","amount":"10.00","description":"d"}`,
			fiber.StatusNotFound,
		},
		{
			"missing destination",
			`{"fromAccountNumber":"ACC1234567890","toAccountNumber":"ACC000","amount":"10.00","description":"d"}`,
			fiber.StatusNotFound,
		},
		{
			"insufficient funds",
			`{"fromAccountNumber":"ACC1234567890","toAccountNumber":"ACC0987654321","amount":"99999.00","description":"d"}`,
			fiber.StatusUnprocessableEntity,
		},
		{
			"same account",
			`{"fromAccountNumber":"ACC1234567890","toAccountNumber":"ACC1234567890","amount":"10.00","description":"d"}`,
			fiber.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, app, fiber.MethodPost, "/api/accounts/transfer", tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}
