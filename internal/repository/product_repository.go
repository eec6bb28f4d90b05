package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/talkincode/catalog/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository reads catalog products
type ProductRepository interface {
	// ListByName returns every product ordered by name ascending
	ListByName(ctx context.Context) ([]domain.Product, error)

	// Count returns the number of stored products
	Count(ctx context.Context) (int64, error)

	// Create inserts a product with its explicit id
	Create(ctx context.Context, product *domain.Product) error
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) ListByName(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	err := r.db.WithContext(ctx).
		Select("id", "nome", "valor_em_centavos").
		Order("nome").
		Find(&products).Error
	if err != nil {
		return nil, errors.Wrap(err, "query produtos")
	}
	return products, nil
}

func (r *GormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count produtos")
	}
	return total, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(product).Error, "insert produto")
}
