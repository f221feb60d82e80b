package discountRepo

import "bizly/models"

// DiscountRepository defines persistence for discount codes.
type DiscountRepository interface {
	Create(discount *models.Discount) error
	Update(discount *models.Discount) error
	Delete(id string) error
	GetByID(id string) (*models.Discount, error)
	GetByCode(code string) (*models.Discount, error)
	GetAll() ([]models.Discount, error)
	IncrementUsage(code string) error
}
