package config

import (
	"log/slog"

	"github.com/amirasaad/bankdesk/pkg/repository/account"
	"github.com/amirasaad/bankdesk/pkg/repository/client"
)

// Deps holds the infrastructure needed to build the app and its services.
type Deps struct {
	Clients  client.Repository
	Accounts account.Repository
	Logger   *slog.Logger
	Config   *App
}
