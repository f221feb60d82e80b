package adminRepo

import "bizly/models"

// AdminRepository defines persistence for dashboard accounts.
type AdminRepository interface {
	Create(admin *models.Admin) error
	Update(admin *models.Admin) error
	Delete(id string) error
	GetByID(id string) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	GetAll() ([]models.Admin, error)
	SetTokenHash(id, tokenHash string) error
}
