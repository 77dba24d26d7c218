package app

import (
	"github.com/amirasaad/bankdesk/pkg/config"
	"github.com/amirasaad/bankdesk/pkg/service/bank"
)

type App struct {
	Deps        *config.Deps
	Config      *config.App
	BankService *bank.Service
}

// New wires the services on top of deps. When the console seed is enabled the
// demo clients and accounts are loaded before New returns.
func New(deps *config.Deps, cfg *config.App) (*App, error) {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.BankService = bank.New(deps.Clients, deps.Accounts, deps.Logger)

	if cfg.Console != nil && cfg.Console.Seed {
		if err := bank.Seed(app.BankService); err != nil {
			return nil, err
		}
	}
	return app, nil
}
