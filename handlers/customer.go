package handlers

import (
	"errors"
	"net/http"

	"bizly/models"
	"bizly/services/customer"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler exposes the customers screen endpoints.
type CustomerHandler struct {
	CustomerService customer.CustomerService
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{CustomerService: svc}
}

// ListCustomersHandler handles GET /customers?tag=.
func (h *CustomerHandler) ListCustomersHandler(c *gin.Context) {
	customers, err := h.CustomerService.List(c.Query("tag"))
	if err != nil {
		utils.GetLogger().Error("Failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerHandler handles GET /customers/:id.
func (h *CustomerHandler) GetCustomerHandler(c *gin.Context) {
	id := c.Param("id")
	cust, err := h.CustomerService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cust)
}

// CreateCustomerHandler handles POST /customers.
func (h *CustomerHandler) CreateCustomerHandler(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.CustomerService.Create(&cust)
	if err != nil {
		var dup customer.DuplicateEmailError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCustomerHandler handles PUT /customers/:id.
func (h *CustomerHandler) UpdateCustomerHandler(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cust.ID = c.Param("id")

	updated, err := h.CustomerService.Update(&cust)
	if err != nil {
		var dup customer.DuplicateEmailError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCustomerHandler handles DELETE /customers/:id.
func (h *CustomerHandler) DeleteCustomerHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.CustomerService.Delete(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
