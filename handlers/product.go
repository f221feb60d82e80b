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

// CatalogHandler exposes the products and discounts screens.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc}
}

// ListProductsHandler handles GET /products?category=&active=.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	products, err := h.CatalogService.ListProducts(c.Query("category"), activeOnly)
	if err != nil {
		utils.GetLogger().Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductHandler handles GET /products/:id.
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	product, err := h.CatalogService.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProductHandler handles POST /products.
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.CatalogService.CreateProduct(&product)
	if err != nil {
		var dup catalog.DuplicateSKUError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProductHandler handles PUT /products/:id.
func (h *CatalogHandler) UpdateProductHandler(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = c.Param("id")

	updated, err := h.CatalogService.UpdateProduct(&product)
	if err != nil {
		var dup catalog.DuplicateSKUError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProductHandler handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.CatalogService.DeleteProduct(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
