package ports

import (
	"context"

	"github.com/crudify/crudify-server/internal/core/domain"
)

// ProductInput carries the mutable product fields for create and update.
// Validation (non-empty name/description, non-negative price/quantity) happens
// at the transport boundary before this reaches the service.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

// ProductService defines the inventory use cases.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	// Update replaces all four mutable fields, refreshes UpdatedAt and
	// preserves ID and CreatedAt. Returns domain.ErrProductNotFound with no
	// side effects when the product does not exist.
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	// Delete reports whether a product was removed; false is a normal
	// outcome, not an error.
	Delete(ctx context.Context, id string) (bool, error)
	SearchByName(ctx context.Context, substring string) ([]*domain.Product, error)
	FilterByMinQuantity(ctx context.Context, threshold int) ([]*domain.Product, error)
}
