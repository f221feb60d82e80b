// Package order backs the orders screen: server-side totals, discount
// redemption, status transitions, and payment intents.
package order

import (
	"fmt"
	"time"

	discountRepo "bizly/database/repository/discount"
	orderRepo "bizly/database/repository/order"
	productRepo "bizly/database/repository/product"
	"bizly/models"
	"bizly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateOrderInput carries the order form payload. Prices are looked up
// server-side; the client only names products and quantities.
type CreateOrderInput struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	DiscountCode string `json:"discount_code"`
	Items        []struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	} `json:"items" binding:"required"`
}

// InvalidDiscountError reports a code that exists but cannot be applied, or
// does not exist at all.
type InvalidDiscountError struct {
	Code string
}

func (e InvalidDiscountError) Error() string {
	return "discount code " + e.Code + " is not redeemable"
}

// InvalidTransitionError reports a rejected status change.
type InvalidTransitionError struct {
	From, To string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

// OrderService manages orders.
type OrderService interface {
	Create(input CreateOrderInput) (*models.Order, error)
	GetByID(id string) (*models.Order, error)
	List(status, customerID string) ([]models.Order, error)
	SetStatus(id, status string) (*models.Order, error)
	Delete(id string) error
	CreatePaymentIntent(id string) (string, error)
}

// DefaultOrderService is the production OrderService implementation.
type DefaultOrderService struct {
	Repo      orderRepo.OrderRepository
	Products  productRepo.ProductRepository
	Discounts discountRepo.DiscountRepository
}

// Create builds the order from live product data, applies the discount code
// if redeemable, and persists with server-computed totals.
func (s *DefaultOrderService) Create(input CreateOrderInput) (*models.Order, error) {
	logger := utils.GetLogger()

	if len(input.Items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item")
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for product %s must be positive", line.ProductID)
		}
		product, err := s.Products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Active {
			return nil, fmt.Errorf("product %s is not available", product.Name)
		}
		items = append(items, models.OrderItem{
			ProductID:      product.ID,
			Name:           product.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
		})
	}

	var discount *models.Discount
	if input.DiscountCode != "" {
		d, err := s.Discounts.GetByCode(input.DiscountCode)
		if err != nil {
			return nil, err
		}
		if d == nil || !d.Redeemable(time.Now()) {
			return nil, InvalidDiscountError{Code: input.DiscountCode}
		}
		discount = d
	}

	subtotal, off, total := ComputeTotals(items, discount)

	order := &models.Order{
		ID:            uuid.New().String(),
		CustomerID:    input.CustomerID,
		Items:         items,
		DiscountCode:  input.DiscountCode,
		SubtotalCents: subtotal,
		DiscountCents: off,
		TotalCents:    total,
		Status:        models.OrderPending,
	}
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}

	if discount != nil {
		if err := s.Discounts.IncrementUsage(discount.Code); err != nil {
			// The order stands; the counter drifting low is the lesser harm.
			logger.Warn("failed to bump discount usage",
				zap.String("code", discount.Code), zap.Error(err))
		}
	}

	logger.Info("order created",
		zap.String("id", order.ID),
		zap.Int64("total_cents", order.TotalCents))
	return order, nil
}

// GetByID returns one order.
func (s *DefaultOrderService) GetByID(id string) (*models.Order, error) {
	return s.Repo.GetByID(id)
}

// List returns orders with optional filters.
func (s *DefaultOrderService) List(status, customerID string) ([]models.Order, error) {
	return s.Repo.GetAll(status, customerID)
}

// SetStatus applies a validated status transition and returns the updated order.
func (s *DefaultOrderService) SetStatus(id, status string) (*models.Order, error) {
	order, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(order.Status, status) {
		return nil, InvalidTransitionError{From: order.Status, To: status}
	}
	if err := s.Repo.SetStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// Delete removes an order document.
func (s *DefaultOrderService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// transitionAllowed encodes the order lifecycle:
// pending -> paid | cancelled, paid -> fulfilled | cancelled.
func transitionAllowed(from, to string) bool {
	switch from {
	case models.OrderPending:
		return to == models.OrderPaid || to == models.OrderCancelled
	case models.OrderPaid:
		return to == models.OrderFulfilled || to == models.OrderCancelled
	default:
		return false
	}
}
