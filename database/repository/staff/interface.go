package staffRepo

import "bizly/models"

// StaffRepository defines persistence for staff members.
type StaffRepository interface {
	Create(staff *models.Staff) error
	Update(staff *models.Staff) error
	Delete(id string) error
	GetByID(id string) (*models.Staff, error)
	GetAll(activeOnly bool) ([]models.Staff, error)
}
