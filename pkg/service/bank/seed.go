package bank

import (
	"time"

	domainaccount "github.com/amirasaad/bankdesk/pkg/domain/account"
	domainclient "github.com/amirasaad/bankdesk/pkg/domain/client"
	"github.com/shopspring/decimal"
)

type seedClient struct {
	id, fullName, phone, email string
	born                       time.Time
}

type seedAccount struct {
	code, ownerID string
	savings       bool
	limit         int64
	opening       int64
}

var (
	seedClients = []seedClient{
		{"30111222", "Ana Gómez", "351-5550001", "ana@correo.com", time.Date(1993, time.May, 10, 0, 0, 0, 0, time.UTC)},
		{"33123456", "Bruno Pérez", "351-5550002", "bruno@correo.com", time.Date(1989, time.November, 2, 0, 0, 0, 0, time.UTC)},
	}
	seedAccounts = []seedAccount{
		{code: "CA-0001", ownerID: "30111222", savings: true, limit: 50000, opening: 120000},
		{code: "CC-1001", ownerID: "33123456", savings: false, limit: 20000, opening: 30000},
	}
)

// Seed loads the demo clients and accounts through the regular operations.
func Seed(s *Service) error {
	for _, sc := range seedClients {
		c, err := domainclient.New(sc.id, sc.fullName, sc.phone, sc.email, sc.born)
		if err != nil {
			return err
		}
		if err := s.AddClient(c); err != nil {
			return err
		}
	}
	for _, sa := range seedAccounts {
		var (
			acc *domainaccount.Account
			err error
		)
		if sa.savings {
			acc, err = domainaccount.NewSavings(sa.code, sa.ownerID, decimal.NewFromInt(sa.limit))
		} else {
			acc, err = domainaccount.NewChecking(sa.code, sa.ownerID, decimal.NewFromInt(sa.limit))
		}
		if err != nil {
			return err
		}
		if err := s.AddAccount(acc); err != nil {
			return err
		}
		if err := s.Deposit(sa.code, decimal.NewFromInt(sa.opening)); err != nil {
			return err
		}
	}
	s.logger.Info("Seed data loaded", "clients", len(seedClients), "accounts", len(seedAccounts))
	return nil
}
