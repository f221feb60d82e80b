package handlers

import (
	"errors"
	"net/http"

	"bizly/services/order"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes the orders screen endpoints.
type OrderHandler struct {
	OrderService order.OrderService
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc order.OrderService) *OrderHandler {
	return &OrderHandler{OrderService: svc}
}

// ListOrdersHandler handles GET /orders?status=&customer_id=.
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.OrderService.List(c.Query("status"), c.Query("customer_id"))
	if err != nil {
		utils.GetLogger().Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderHandler handles GET /orders/:id.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	ord, err := h.OrderService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ord)
}

// CreateOrderHandler handles POST /orders.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	var input order.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.OrderService.Create(input)
	if err != nil {
		var badCode order.InvalidDiscountError
		if errors.As(err, &badCode) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SetOrderStatusHandler handles PATCH /orders/:id/status.
func (h *OrderHandler) SetOrderStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.OrderService.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		var badMove order.InvalidTransitionError
		if errors.As(err, &badMove) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteOrderHandler handles DELETE /orders/:id.
func (h *OrderHandler) DeleteOrderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.OrderService.Delete(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// CreatePaymentIntentHandler handles POST /orders/:id/payment-intent. Returns
// the Stripe client secret the dashboard hands to the card element.
func (h *OrderHandler) CreatePaymentIntentHandler(c *gin.Context) {
	id := c.Param("id")
	clientSecret, err := h.OrderService.CreatePaymentIntent(id)
	if err != nil {
		utils.GetLogger().Error("Payment intent failed", zap.String("order_id", id), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
}
