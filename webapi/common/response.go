package common

import (
	"errors"

	"github.com/fastbank/bankingapi/pkg/domain/ledger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProblemDetails is the RFC 9457 error body returned by every failing
// endpoint.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // problem type URI, "about:blank" when generic
	Title    string `json:"title"`              // one-line summary of what failed
	Status   int    `json:"status"`             // HTTP status code, duplicated in the body
	Detail   string `json:"detail,omitempty"`   // explanation for this occurrence
	Instance string `json:"instance,omitempty"` // request URL that produced the problem
	Errors   any    `json:"errors,omitempty"`   // structured details when Detail is not a string
}

// ErrorResponseJSON writes a response following RFC 9457 Problem Details.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")

	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps ledger errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrSourceAccountNotFound),
		errors.Is(err, ledger.ErrDestinationAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrAmountMustBePositive),
		errors.Is(err, ledger.ErrSameAccountTransfer):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure it writes a 400 problem-details
// response itself and returns a non-nil error; handlers must treat that
// error as a signal only and return nil to Fiber, or the app error
// handler would replace the already-written response.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error()) //nolint:errcheck
		return nil, err
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error()) //nolint:errcheck
		return nil, err
	}
	return &input, nil
}
