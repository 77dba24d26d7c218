// Package memory keeps clients and accounts in process memory. Records are
// held in insertion order and keys are compared without regard to case.
package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/amirasaad/bankdesk/pkg/domain"
	domainclient "github.com/amirasaad/bankdesk/pkg/domain/client"
	"github.com/amirasaad/bankdesk/pkg/repository/client"
)

type clientRepository struct {
	clients []*domainclient.Client
}

// NewClientRepository returns an empty client store.
func NewClientRepository() client.Repository {
	return &clientRepository{}
}

func (r *clientRepository) index(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(r.clients, func(c *domainclient.Client) bool {
		return strings.EqualFold(c.ID(), id)
	})
}

func (r *clientRepository) Add(c *domainclient.Client) error {
	if c == nil {
		return fmt.Errorf("%w: client is required", domain.ErrInvalidArgument)
	}
	if r.index(c.ID()) >= 0 {
		return fmt.Errorf("%w: client %q already exists", domain.ErrDuplicateKey, c.ID())
	}
	r.clients = append(r.clients, c)
	return nil
}

func (r *clientRepository) Get(id string) (*domainclient.Client, error) {
	i := r.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: client %q", domain.ErrNotFound, id)
	}
	return r.clients[i], nil
}

func (r *clientRepository) Remove(id string) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("%w: client %q", domain.ErrNotFound, id)
	}
	r.clients = slices.Delete(r.clients, i, i+1)
	return nil
}

func (r *clientRepository) List() []*domainclient.Client {
	return slices.Clone(r.clients)
}
