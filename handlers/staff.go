package handlers

import (
	"net/http"

	"bizly/models"
	"bizly/services/staff"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes the staff screen endpoints.
type StaffHandler struct {
	StaffService staff.StaffService
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{StaffService: svc}
}

// ListStaffHandler handles GET /staff?active=.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	members, err := h.StaffService.List(c.Query("active") == "true")
	if err != nil {
		utils.GetLogger().Error("Failed to list staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetStaffHandler handles GET /staff/:id.
func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	member, err := h.StaffService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateStaffHandler handles POST /staff.
func (h *StaffHandler) CreateStaffHandler(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.StaffService.Create(&member)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStaffHandler handles PUT /staff/:id.
func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	var member models.Staff
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member.ID = c.Param("id")

	updated, err := h.StaffService.Update(&member)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStaffHandler handles DELETE /staff/:id.
func (h *StaffHandler) DeleteStaffHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.StaffService.Delete(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
