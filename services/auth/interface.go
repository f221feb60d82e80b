package auth

import "bizly/models"

// Session is the response to a successful login.
type Session struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// AuthService manages dashboard sign-in sessions.
type AuthService interface {
	Login(email, password string) (*Session, error)
	Logout(adminID string) error
	GetAdmin(adminID string) (*models.Admin, error)
	Register(name, email, password, role string) (*models.Admin, error)
}
