package account

import (
	domainaccount "github.com/amirasaad/bankdesk/pkg/domain/account"
)

// Repository defines the store contract for accounts. Codes are unique and
// matched case-insensitively; List keeps insertion order.
type Repository interface {
	// Add stores a new account. It fails with domain.ErrDuplicateKey when the code is taken.
	Add(acc *domainaccount.Account) error

	// Get returns the account with the given code, or domain.ErrNotFound.
	Get(code string) (*domainaccount.Account, error)

	// Remove deletes the account with the given code, or returns domain.ErrNotFound.
	Remove(code string) error

	// List returns every account in insertion order.
	List() []*domainaccount.Account

	// ListByOwner returns the accounts owned by the given client id in insertion order.
	ListByOwner(ownerID string) []*domainaccount.Account
}
