package ports

import (
	"context"

	"github.com/crudify/crudify-server/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	// Replace overwrites the stored product with the same ID. Returns
	// domain.ErrProductNotFound when no such product exists.
	Replace(ctx context.Context, p *domain.Product) error
	// Delete removes the product and reports whether one existed.
	Delete(ctx context.Context, id string) (bool, error)
	// SearchByName matches the name field case-insensitively against the
	// given substring. An empty substring matches everything.
	SearchByName(ctx context.Context, substring string) ([]*domain.Product, error)
	// FindWithQuantityAbove returns products whose quantity is strictly
	// greater than threshold.
	FindWithQuantityAbove(ctx context.Context, threshold int) ([]*domain.Product, error)
}
