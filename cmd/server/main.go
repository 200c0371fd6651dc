package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	memoryrepo "github.com/fastbank/bankingapi/infra/repository"
	"github.com/fastbank/bankingapi/infra/seed"
	"github.com/fastbank/bankingapi/pkg/config"
	ledgersvc "github.com/fastbank/bankingapi/pkg/service/ledger"
	"github.com/fastbank/bankingapi/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()

	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	repo := memoryrepo.NewMemoryAccountRepository()
	ledgerSvc := ledgersvc.NewService(repo, logger)

	if cfg.SeedDemoData {
		seed.Demo(repo, logger)
	}

	app := webapi.NewApp(ledgerSvc, cfg)

	addr := cfg.Server.Addr()
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
