package handlers

import (
	"errors"
	"net/http"

	"bizly/models"
	"bizly/services/catalog"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListDiscountsHandler handles GET /discounts.
func (h *CatalogHandler) ListDiscountsHandler(c *gin.Context) {
	discounts, err := h.CatalogService.ListDiscounts()
	if err != nil {
		utils.GetLogger().Error("Failed to list discounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, discounts)
}

// GetDiscountHandler handles GET /discounts/:id.
func (h *CatalogHandler) GetDiscountHandler(c *gin.Context) {
	discount, err := h.CatalogService.GetDiscount(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, discount)
}

// CreateDiscountHandler handles POST /discounts.
func (h *CatalogHandler) CreateDiscountHandler(c *gin.Context) {
	var discount models.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.CatalogService.CreateDiscount(&discount)
	if err != nil {
		var dup catalog.DuplicateCodeError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDiscountHandler handles PUT /discounts/:id.
func (h *CatalogHandler) UpdateDiscountHandler(c *gin.Context) {
	var discount models.Discount
	if err := c.ShouldBindJSON(&discount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	discount.ID = c.Param("id")

	updated, err := h.CatalogService.UpdateDiscount(&discount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDiscountHandler handles DELETE /discounts/:id.
func (h *CatalogHandler) DeleteDiscountHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.CatalogService.DeleteDiscount(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
}

// CheckDiscountCodeHandler handles GET /discounts/check?code=. The order form
// calls this as the admin types a code.
func (h *CatalogHandler) CheckDiscountCodeHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing parameter", "code query parameter is required")
		return
	}

	discount, err := h.CatalogService.CheckCode(code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if discount == nil {
		c.JSON(http.StatusOK, gin.H{"redeemable": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redeemable": true, "discount": discount})
}
