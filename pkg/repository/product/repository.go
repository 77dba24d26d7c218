package product

import (
	"context"

	domainproduct "github.com/amirasaad/bankdesk/pkg/domain/product"
)

// Repository defines read access to the product catalog.
type Repository interface {
	// Ping checks that the backing database answers.
	Ping(ctx context.Context) error

	// List returns every product in the order the database yields them.
	List(ctx context.Context) ([]domainproduct.Product, error)
}
