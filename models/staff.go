package models

import "time"

// Staff is one staff member bookable for appointments.
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	Services  []string  `bson:"services,omitempty" json:"services,omitempty"` // service names this member performs
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
