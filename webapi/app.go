// Package webapi wires the ledger service into a Fiber HTTP application.
// The handlers are thin: they bind and validate the request, parse amounts
// as exact decimals, call the service and render the result.
package webapi

import (
	"github.com/fastbank/bankingapi/pkg/config"
	ledgersvc "github.com/fastbank/bankingapi/pkg/service/ledger"
	"github.com/fastbank/bankingapi/webapi/account"
	"github.com/fastbank/bankingapi/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application with all middleware and routes.
func NewApp(ledgerSvc *ledgersvc.Service, cfg *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Banking API is up")
	})

	account.Routes(app, ledgerSvc)

	return app
}
