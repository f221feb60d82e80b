// Package customer backs the customers screen with straightforward CRUD over
// the customers collection.
package customer

import (
	"fmt"
	"strings"

	customerRepo "bizly/database/repository/customer"
	"bizly/models"

	"github.com/google/uuid"
)

// DuplicateEmailError signals a create/update against an email already in use.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "a customer already exists for " + e.Email
}

// CustomerService manages customer records.
type CustomerService interface {
	Create(customer *models.Customer) (*models.Customer, error)
	Update(customer *models.Customer) (*models.Customer, error)
	Delete(id string) error
	GetByID(id string) (*models.Customer, error)
	List(tag string) ([]models.Customer, error)
}

// DefaultCustomerService is the production CustomerService implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

// Create inserts a customer after normalizing the email and checking it is unused.
func (s *DefaultCustomerService) Create(customer *models.Customer) (*models.Customer, error) {
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	if customer.Name == "" || customer.Email == "" {
		return nil, fmt.Errorf("customer name and email are required")
	}

	existing, err := s.Repo.GetByEmail(customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: customer.Email}
	}

	customer.ID = uuid.New().String()
	if err := s.Repo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update rewrites a customer document in place.
func (s *DefaultCustomerService) Update(customer *models.Customer) (*models.Customer, error) {
	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))

	existing, err := s.Repo.GetByEmail(customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != customer.ID {
		return nil, DuplicateEmailError{Email: customer.Email}
	}

	if err := s.Repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer record.
func (s *DefaultCustomerService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// GetByID returns one customer.
func (s *DefaultCustomerService) GetByID(id string) (*models.Customer, error) {
	return s.Repo.GetByID(id)
}

// List returns customers, filtered by marketing tag when one is given.
func (s *DefaultCustomerService) List(tag string) ([]models.Customer, error) {
	if tag != "" {
		return s.Repo.GetByTag(tag)
	}
	return s.Repo.GetAll()
}
