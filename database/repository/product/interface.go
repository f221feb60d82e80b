package productRepo

import "bizly/models"

// ProductRepository defines persistence for products.
type ProductRepository interface {
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	GetByID(id string) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	GetAll(category string, activeOnly bool) ([]models.Product, error)
	Count() (int, error)
}
