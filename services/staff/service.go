// Package staff backs the staff screen.
package staff

import (
	"fmt"

	staffRepo "bizly/database/repository/staff"
	"bizly/models"

	"github.com/google/uuid"
)

// StaffService manages staff members.
type StaffService interface {
	Create(staff *models.Staff) (*models.Staff, error)
	Update(staff *models.Staff) (*models.Staff, error)
	Delete(id string) error
	GetByID(id string) (*models.Staff, error)
	List(activeOnly bool) ([]models.Staff, error)
}

// DefaultStaffService is the production StaffService implementation.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

// Create inserts a staff member.
func (s *DefaultStaffService) Create(staff *models.Staff) (*models.Staff, error) {
	if staff.Name == "" || staff.Email == "" {
		return nil, fmt.Errorf("staff name and email are required")
	}
	staff.ID = uuid.New().String()
	if err := s.Repo.Create(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Update rewrites a staff document in place.
func (s *DefaultStaffService) Update(staff *models.Staff) (*models.Staff, error) {
	if err := s.Repo.Update(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Delete removes a staff member.
func (s *DefaultStaffService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// GetByID returns one staff member.
func (s *DefaultStaffService) GetByID(id string) (*models.Staff, error) {
	return s.Repo.GetByID(id)
}

// List returns staff members.
func (s *DefaultStaffService) List(activeOnly bool) ([]models.Staff, error) {
	return s.Repo.GetAll(activeOnly)
}
