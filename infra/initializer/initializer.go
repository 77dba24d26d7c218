package initializer

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/bankdesk/infra"
	"github.com/amirasaad/bankdesk/infra/repository/memory"
	productrepo "github.com/amirasaad/bankdesk/infra/repository/product"
	"github.com/amirasaad/bankdesk/pkg/config"
	"github.com/amirasaad/bankdesk/pkg/service/catalog"
)

// InitializeDependencies sets up the logger and the in-memory stores the bank
// service runs on. Log output goes to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (*config.Deps, error) {
	if cfg == nil || cfg.Log == nil {
		return nil, fmt.Errorf("initialize dependencies: log config is required")
	}
	logger := SetupLogger(cfg.Log, logOut)

	deps := &config.Deps{
		Clients:  memory.NewClientRepository(),
		Accounts: memory.NewAccountRepository(),
		Logger:   logger,
		Config:   cfg,
	}
	logger.Debug("Dependencies initialized", "env", cfg.Env)
	return deps, nil
}

// InitializeCatalog connects to the catalog database and returns the product
// service on top of it.
func InitializeCatalog(cfg *config.App, logger *slog.Logger) (*catalog.Service, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize catalog database", "error", err)
		return nil, fmt.Errorf("catalog database error: %w", err)
	}
	return catalog.New(productrepo.New(db), logger), nil
}
