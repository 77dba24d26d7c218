package product

import (
	"context"

	infrarepo "github.com/amirasaad/bankdesk/infra/repository"
	domainproduct "github.com/amirasaad/bankdesk/pkg/domain/product"
	"github.com/amirasaad/bankdesk/pkg/repository/product"
	"gorm.io/gorm"
)

const listQuery = "SELECT id, name, price FROM products"

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) product.Repository {
	return &repository{db: db}
}

func (r *repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *repository) List(ctx context.Context) ([]domainproduct.Product, error) {
	var rows []Product
	if err := infrarepo.WrapError(func() error {
		return r.db.WithContext(ctx).Raw(listQuery).Scan(&rows).Error
	}); err != nil {
		return nil, err
	}

	result := make([]domainproduct.Product, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapModelToDomain(row))
	}
	return result, nil
}

func mapModelToDomain(p Product) domainproduct.Product {
	return domainproduct.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}
