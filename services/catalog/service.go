// Package catalog backs the products and discounts screens.
package catalog

import (
	"fmt"
	"strings"
	"time"

	discountRepo "bizly/database/repository/discount"
	productRepo "bizly/database/repository/product"
	"bizly/models"

	"github.com/google/uuid"
)

// DuplicateSKUError signals a product create/update against a SKU already in use.
type DuplicateSKUError struct {
	SKU string
}

func (e DuplicateSKUError) Error() string {
	return "a product already exists for SKU " + e.SKU
}

// DuplicateCodeError signals a discount create against a code already in use.
type DuplicateCodeError struct {
	Code string
}

func (e DuplicateCodeError) Error() string {
	return "a discount already exists for code " + e.Code
}

// CatalogService manages products and discount codes.
type CatalogService interface {
	CreateProduct(product *models.Product) (*models.Product, error)
	UpdateProduct(product *models.Product) (*models.Product, error)
	DeleteProduct(id string) error
	GetProduct(id string) (*models.Product, error)
	ListProducts(category string, activeOnly bool) ([]models.Product, error)

	CreateDiscount(discount *models.Discount) (*models.Discount, error)
	UpdateDiscount(discount *models.Discount) (*models.Discount, error)
	DeleteDiscount(id string) error
	GetDiscount(id string) (*models.Discount, error)
	ListDiscounts() ([]models.Discount, error)
	CheckCode(code string) (*models.Discount, error)
}

// DefaultCatalogService is the production CatalogService implementation.
type DefaultCatalogService struct {
	Products  productRepo.ProductRepository
	Discounts discountRepo.DiscountRepository
}

// CreateProduct inserts a product after checking its SKU is unused.
func (s *DefaultCatalogService) CreateProduct(product *models.Product) (*models.Product, error) {
	product.SKU = strings.ToUpper(strings.TrimSpace(product.SKU))
	if product.Name == "" || product.SKU == "" {
		return nil, fmt.Errorf("product name and SKU are required")
	}
	if product.PriceCents < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	existing, err := s.Products.GetBySKU(product.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, DuplicateSKUError{SKU: product.SKU}
	}

	product.ID = uuid.New().String()
	if err := s.Products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct rewrites a product document in place.
func (s *DefaultCatalogService) UpdateProduct(product *models.Product) (*models.Product, error) {
	product.SKU = strings.ToUpper(strings.TrimSpace(product.SKU))

	existing, err := s.Products.GetBySKU(product.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != product.ID {
		return nil, DuplicateSKUError{SKU: product.SKU}
	}

	if err := s.Products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product.
func (s *DefaultCatalogService) DeleteProduct(id string) error {
	return s.Products.Delete(id)
}

// GetProduct returns one product.
func (s *DefaultCatalogService) GetProduct(id string) (*models.Product, error) {
	return s.Products.GetByID(id)
}

// ListProducts returns products with optional filters.
func (s *DefaultCatalogService) ListProducts(category string, activeOnly bool) ([]models.Product, error) {
	return s.Products.GetAll(category, activeOnly)
}

// CreateDiscount inserts a discount code after validation.
func (s *DefaultCatalogService) CreateDiscount(discount *models.Discount) (*models.Discount, error) {
	discount.Code = strings.ToUpper(strings.TrimSpace(discount.Code))
	if discount.Code == "" {
		return nil, fmt.Errorf("discount code is required")
	}
	if discount.Kind != models.DiscountPercent && discount.Kind != models.DiscountFixed {
		return nil, fmt.Errorf("discount kind must be %q or %q", models.DiscountPercent, models.DiscountFixed)
	}
	if discount.Value <= 0 {
		return nil, fmt.Errorf("discount value must be positive")
	}
	if discount.Kind == models.DiscountPercent && discount.Value > 100 {
		return nil, fmt.Errorf("percent discount cannot exceed 100")
	}
	if !discount.EndsAt.After(discount.StartsAt) {
		return nil, fmt.Errorf("discount window must end after it starts")
	}

	existing, err := s.Discounts.GetByCode(discount.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, DuplicateCodeError{Code: discount.Code}
	}

	discount.ID = uuid.New().String()
	if err := s.Discounts.Create(discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// UpdateDiscount rewrites a discount document in place.
func (s *DefaultCatalogService) UpdateDiscount(discount *models.Discount) (*models.Discount, error) {
	discount.Code = strings.ToUpper(strings.TrimSpace(discount.Code))
	if err := s.Discounts.Update(discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// DeleteDiscount removes a discount.
func (s *DefaultCatalogService) DeleteDiscount(id string) error {
	return s.Discounts.Delete(id)
}

// GetDiscount returns one discount.
func (s *DefaultCatalogService) GetDiscount(id string) (*models.Discount, error) {
	return s.Discounts.GetByID(id)
}

// ListDiscounts returns all discounts.
func (s *DefaultCatalogService) ListDiscounts() ([]models.Discount, error) {
	return s.Discounts.GetAll()
}

// CheckCode returns the discount behind a code if it is redeemable right now,
// nil otherwise. Used by the order form's live code check.
func (s *DefaultCatalogService) CheckCode(code string) (*models.Discount, error) {
	discount, err := s.Discounts.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if discount == nil || !discount.Redeemable(time.Now()) {
		return nil, nil
	}
	return discount, nil
}
