package client

import (
	domainclient "github.com/amirasaad/bankdesk/pkg/domain/client"
)

// Repository defines the store contract for clients. Ids are unique and
// matched case-insensitively; List keeps insertion order.
type Repository interface {
	// Add stores a new client. It fails with domain.ErrDuplicateKey when the id is taken.
	Add(c *domainclient.Client) error

	// Get returns the client with the given id, or domain.ErrNotFound.
	Get(id string) (*domainclient.Client, error)

	// Remove deletes the client with the given id, or returns domain.ErrNotFound.
	Remove(id string) error

	// List returns every client in insertion order.
	List() []*domainclient.Client
}
