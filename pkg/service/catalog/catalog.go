// Package catalog reads the product list from the catalog database.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankdesk/pkg/domain/product"
	productrepo "github.com/amirasaad/bankdesk/pkg/repository/product"
)

// Service exposes read-only access to the product catalog.
type Service struct {
	repo   productrepo.Repository
	logger *slog.Logger
}

// New creates a catalog Service.
func New(repo productrepo.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Ping reports whether the catalog database can be reached.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warn("Catalog ping failed", "error", err)
		return fmt.Errorf("catalog database error: %w", err)
	}
	return nil
}

// List returns every product in row order.
func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List products failed", "error", err)
		return nil, fmt.Errorf("catalog database error: %w", err)
	}
	s.logger.Debug("List products successful", "count", len(products))
	return products, nil
}
