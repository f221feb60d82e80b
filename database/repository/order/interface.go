package orderRepo

import "bizly/models"

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	Create(order *models.Order) error
	Update(order *models.Order) error
	Delete(id string) error
	GetByID(id string) (*models.Order, error)
	GetAll(status, customerID string) ([]models.Order, error)
	SetStatus(id, status string) error
	SetPaymentIntent(id, paymentIntentID string) error
	StatsByStatus() ([]models.OrderStatusStat, error)
}
