package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/amirasaad/bankdesk/pkg/domain"
	domainaccount "github.com/amirasaad/bankdesk/pkg/domain/account"
	"github.com/amirasaad/bankdesk/pkg/repository/account"
)

type accountRepository struct {
	accounts []*domainaccount.Account
}

// NewAccountRepository returns an empty account store.
func NewAccountRepository() account.Repository {
	return &accountRepository{}
}

func (r *accountRepository) index(code string) int {
	code = strings.TrimSpace(code)
	return slices.IndexFunc(r.accounts, func(a *domainaccount.Account) bool {
		return strings.EqualFold(a.Code(), code)
	})
}

func (r *accountRepository) Add(acc *domainaccount.Account) error {
	if acc == nil {
		return fmt.Errorf("%w: account is required", domain.ErrInvalidArgument)
	}
	if r.index(acc.Code()) >= 0 {
		return fmt.Errorf("%w: account %q already exists", domain.ErrDuplicateKey, acc.Code())
	}
	r.accounts = append(r.accounts, acc)
	return nil
}

func (r *accountRepository) Get(code string) (*domainaccount.Account, error) {
	i := r.index(code)
	if i < 0 {
		return nil, fmt.Errorf("%w: account %q", domain.ErrNotFound, code)
	}
	return r.accounts[i], nil
}

func (r *accountRepository) Remove(code string) error {
	i := r.index(code)
	if i < 0 {
		return fmt.Errorf("%w: account %q", domain.ErrNotFound, code)
	}
	r.accounts = slices.Delete(r.accounts, i, i+1)
	return nil
}

func (r *accountRepository) List() []*domainaccount.Account {
	return slices.Clone(r.accounts)
}

func (r *accountRepository) ListByOwner(ownerID string) []*domainaccount.Account {
	ownerID = strings.TrimSpace(ownerID)
	var out []*domainaccount.Account
	for _, a := range r.accounts {
		if strings.EqualFold(a.OwnerID(), ownerID) {
			out = append(out, a)
		}
	}
	return out
}
