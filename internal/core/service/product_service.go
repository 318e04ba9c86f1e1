package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crudify/crudify-server/internal/core/domain"
	"github.com/crudify/crudify-server/internal/core/ports"
)

// ProductService implements the inventory use cases.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// Update overwrites all four mutable fields of an existing product. ID and
// CreatedAt are preserved, UpdatedAt is refreshed.
func (s *ProductService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.logger.Info().Str("product_id", id).Msg("product deleted")
	}
	return deleted, nil
}

func (s *ProductService) SearchByName(ctx context.Context, substring string) ([]*domain.Product, error) {
	products, err := s.repo.SearchByName(ctx, substring)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

// FilterByMinQuantity returns products with quantity strictly greater than
// threshold.
func (s *ProductService) FilterByMinQuantity(ctx context.Context, threshold int) ([]*domain.Product, error) {
	products, err := s.repo.FindWithQuantityAbove(ctx, threshold)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}
