// Package bank orchestrates clients and accounts. It is the only entry point
// that mutates them and it keeps every account pointing at a registered client.
package bank

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/amirasaad/bankdesk/pkg/domain"
	domainaccount "github.com/amirasaad/bankdesk/pkg/domain/account"
	domainclient "github.com/amirasaad/bankdesk/pkg/domain/client"
	"github.com/amirasaad/bankdesk/pkg/repository/account"
	"github.com/amirasaad/bankdesk/pkg/repository/client"
	"github.com/shopspring/decimal"
)

// Service owns the client registry and the account collection.
//
// Invariants held after every call:
//   - client ids and account codes are unique, compared without case
//   - every account owner id names a registered client
//
// A failed call leaves both collections untouched.
type Service struct {
	clients  client.Repository
	accounts account.Repository
	logger   *slog.Logger
}

// New creates a Service over the given stores.
func New(
	clients client.Repository,
	accounts account.Repository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		clients:  clients,
		accounts: accounts,
		logger:   logger,
	}
}

// AddClient registers c. It fails with domain.ErrDuplicateKey when the id is taken.
func (s *Service) AddClient(c *domainclient.Client) error {
	if c == nil {
		return fmt.Errorf("%w: client is required", domain.ErrInvalidArgument)
	}
	logger := s.logger.With("clientID", c.ID())
	if err := s.clients.Add(c); err != nil {
		logger.Info("AddClient rejected", "error", err)
		return err
	}
	logger.Info("AddClient successful")
	return nil
}

// ModifyClient replaces the mutable fields of a registered client.
func (s *Service) ModifyClient(
	id, fullName, phone, email string,
	birthDate time.Time,
) error {
	logger := s.logger.With("clientID", id)
	c, err := s.clients.Get(id)
	if err != nil {
		logger.Info("ModifyClient rejected: client not found", "error", err)
		return err
	}
	if err := c.Modify(fullName, phone, email, birthDate); err != nil {
		logger.Info("ModifyClient rejected: invalid data", "error", err)
		return err
	}
	logger.Info("ModifyClient successful")
	return nil
}

// RemoveClient deletes a client that owns no accounts.
func (s *Service) RemoveClient(id string) error {
	logger := s.logger.With("clientID", id)
	c, err := s.clients.Get(id)
	if err != nil {
		logger.Info("RemoveClient rejected: client not found", "error", err)
		return err
	}
	if owned := s.accounts.ListByOwner(c.ID()); len(owned) > 0 {
		err = fmt.Errorf("%w: client %s still owns %d account(s)", domain.ErrConflict, c.ID(), len(owned))
		logger.Info("RemoveClient rejected: client has accounts", "error", err)
		return err
	}
	if err := s.clients.Remove(c.ID()); err != nil {
		return err
	}
	logger.Info("RemoveClient successful")
	return nil
}

// FindClientByID looks a client up by id, ignoring case.
func (s *Service) FindClientByID(id string) (*domainclient.Client, bool) {
	c, err := s.clients.Get(id)
	if err != nil {
		return nil, false
	}
	return c, true
}

// FindClientsByName returns the clients whose full name contains text,
// ignoring case, ordered by full name. An empty text matches everyone.
func (s *Service) FindClientsByName(text string) []*domainclient.Client {
	needle := strings.ToLower(strings.TrimSpace(text))
	var out []*domainclient.Client
	for _, c := range s.clients.List() {
		if strings.Contains(strings.ToLower(c.FullName()), needle) {
			out = append(out, c)
		}
	}
	sortByName(out)
	return out
}

// Clients returns every registered client ordered by full name.
func (s *Service) Clients() []*domainclient.Client {
	return s.FindClientsByName("")
}

func sortByName(clients []*domainclient.Client) {
	slices.SortStableFunc(clients, func(a, b *domainclient.Client) int {
		return cmp.Compare(strings.ToLower(a.FullName()), strings.ToLower(b.FullName()))
	})
}

// AddAccount stores acc. The code must be free and the owner must be a
// registered client; the owner id is normalized to the client's own id.
func (s *Service) AddAccount(acc *domainaccount.Account) error {
	if acc == nil {
		return fmt.Errorf("%w: account is required", domain.ErrInvalidArgument)
	}
	logger := s.logger.With("accountCode", acc.Code(), "ownerID", acc.OwnerID())
	if _, err := s.accounts.Get(acc.Code()); err == nil {
		err = fmt.Errorf("%w: account %q already exists", domain.ErrDuplicateKey, acc.Code())
		logger.Info("AddAccount rejected: duplicate code", "error", err)
		return err
	}
	owner, err := s.clients.Get(acc.OwnerID())
	if err != nil {
		err = fmt.Errorf("%w: owner %q is not a registered client", domain.ErrConflict, acc.OwnerID())
		logger.Info("AddAccount rejected: unknown owner", "error", err)
		return err
	}
	if owner.ID() != acc.OwnerID() {
		if err := acc.ChangeOwner(owner.ID()); err != nil {
			return err
		}
	}
	if err := s.accounts.Add(acc); err != nil {
		logger.Info("AddAccount rejected", "error", err)
		return err
	}
	logger.Info("AddAccount successful", "kind", acc.Kind())
	return nil
}

// ChangeAccountOwner hands the account over to another registered client.
func (s *Service) ChangeAccountOwner(code, newOwnerID string) error {
	logger := s.logger.With("accountCode", code, "newOwnerID", newOwnerID)
	acc, err := s.accounts.Get(code)
	if err != nil {
		logger.Info("ChangeAccountOwner rejected: account not found", "error", err)
		return err
	}
	owner, err := s.clients.Get(newOwnerID)
	if err != nil {
		logger.Info("ChangeAccountOwner rejected: client not found", "error", err)
		return err
	}
	if err := acc.ChangeOwner(owner.ID()); err != nil {
		return err
	}
	logger.Info("ChangeAccountOwner successful")
	return nil
}

// RemoveAccount deletes an account whose balance is exactly zero.
func (s *Service) RemoveAccount(code string) error {
	logger := s.logger.With("accountCode", code)
	acc, err := s.accounts.Get(code)
	if err != nil {
		logger.Info("RemoveAccount rejected: account not found", "error", err)
		return err
	}
	if !acc.IsSettled() {
		err = fmt.Errorf("%w: account %s has a non-zero balance", domain.ErrConflict, acc.Code())
		logger.Info("RemoveAccount rejected: balance not zero", "error", err, "balance", acc.Balance())
		return err
	}
	if err := s.accounts.Remove(acc.Code()); err != nil {
		return err
	}
	logger.Info("RemoveAccount successful")
	return nil
}

// FindAccountByCode looks an account up by code, ignoring case.
func (s *Service) FindAccountByCode(code string) (*domainaccount.Account, bool) {
	acc, err := s.accounts.Get(code)
	if err != nil {
		return nil, false
	}
	return acc, true
}

// ListAccountsForClient returns the accounts owned by id in insertion order.
func (s *Service) ListAccountsForClient(id string) []*domainaccount.Account {
	return s.accounts.ListByOwner(id)
}

// Accounts returns every account in insertion order.
func (s *Service) Accounts() []*domainaccount.Account {
	return s.accounts.List()
}

// Deposit credits amount to the account with the given code.
func (s *Service) Deposit(code string, amount decimal.Decimal) error {
	logger := s.logger.With("accountCode", code, "amount", amount)
	acc, err := s.accounts.Get(code)
	if err != nil {
		logger.Info("Deposit rejected: account not found", "error", err)
		return err
	}
	if err := acc.Deposit(amount); err != nil {
		logger.Info("Deposit rejected", "error", err)
		return err
	}
	logger.Info("Deposit successful", "balance", acc.Balance())
	return nil
}

// Withdraw debits amount from the account with the given code if its policy allows it.
func (s *Service) Withdraw(code string, amount decimal.Decimal) error {
	logger := s.logger.With("accountCode", code, "amount", amount)
	acc, err := s.accounts.Get(code)
	if err != nil {
		logger.Info("Withdraw rejected: account not found", "error", err)
		return err
	}
	if err := acc.Withdraw(amount); err != nil {
		logger.Info("Withdraw rejected", "error", err)
		return err
	}
	logger.Info("Withdraw successful", "balance", acc.Balance())
	return nil
}

// Movements returns the account log newest first.
func (s *Service) Movements(code string) ([]domainaccount.Movement, error) {
	acc, err := s.accounts.Get(code)
	if err != nil {
		return nil, err
	}
	movs := acc.Movements()
	slices.Reverse(movs)
	return movs, nil
}
