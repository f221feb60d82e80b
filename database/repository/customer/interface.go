package customerRepo

import "bizly/models"

// CustomerRepository defines persistence for customer records.
type CustomerRepository interface {
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id string) error
	GetByID(id string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetByTag(tag string) ([]models.Customer, error)
	Count() (int, error)
}
