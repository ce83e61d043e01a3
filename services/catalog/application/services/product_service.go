package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/logger"
	catalogdomain "github.com/ghuser/orderdesk/services/catalog/domain"
	"github.com/ghuser/orderdesk/services/catalog/domain/models"
	"github.com/ghuser/orderdesk/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/catalog/domain/services"
)

// ProductService orchestrates the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
	log  logger.Logger
}

// NewProductService returns a ProductService wired with the given repository.
func NewProductService(repo repositories.ProductRepository, log logger.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

// Create validates and persists a Product.
func (s *ProductService) Create(ctx context.Context, name string, price decimal.Decimal) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	product := models.NewProduct(productName, price)
	if err := domainsvcs.ValidateProduct(product); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	s.log.InfoContext(ctx, "product created", "product_id", product.ID, "price", product.Price.StringFixed(2))
	return product, nil
}

// GetByID retrieves a Product. Returns ErrProductNotFound if absent.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// List returns the whole catalog ordered by name.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Update renames and reprices a Product. Existing order lines keep their
// captured unit price.
func (s *ProductService) Update(ctx context.Context, id int64, name string, price decimal.Decimal) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	product.Revise(productName, price)
	if err := domainsvcs.ValidateProduct(product); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.InfoContext(ctx, "product updated", "product_id", product.ID, "price", product.Price.StringFixed(2))
	return product, nil
}

// Delete removes a Product. Returns ErrProductInUse when orders reference it.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	s.log.InfoContext(ctx, "product deleted", "product_id", id)
	return nil
}
