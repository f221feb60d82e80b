package handlers

import (
	"errors"
	"net/http"
	"time"

	"bizly/models"
	"bizly/services/marketing"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CampaignHandler exposes the marketing screen endpoints.
type CampaignHandler struct {
	MarketingService marketing.MarketingService
}

// NewCampaignHandler creates a CampaignHandler.
func NewCampaignHandler(svc marketing.MarketingService) *CampaignHandler {
	return &CampaignHandler{MarketingService: svc}
}

// ListCampaignsHandler handles GET /campaigns?status=.
func (h *CampaignHandler) ListCampaignsHandler(c *gin.Context) {
	campaigns, err := h.MarketingService.List(c.Query("status"))
	if err != nil {
		utils.GetLogger().Error("Failed to list campaigns", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// GetCampaignHandler handles GET /campaigns/:id.
func (h *CampaignHandler) GetCampaignHandler(c *gin.Context) {
	campaign, err := h.MarketingService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// CreateCampaignHandler handles POST /campaigns.
func (h *CampaignHandler) CreateCampaignHandler(c *gin.Context) {
	var campaign models.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.MarketingService.Create(&campaign)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCampaignHandler handles PUT /campaigns/:id. Only drafts accept edits.
func (h *CampaignHandler) UpdateCampaignHandler(c *gin.Context) {
	var campaign models.Campaign
	if err := c.ShouldBindJSON(&campaign); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaign.ID = c.Param("id")

	updated, err := h.MarketingService.Update(&campaign)
	if err != nil {
		var state marketing.StateError
		if errors.As(err, &state) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCampaignHandler handles DELETE /campaigns/:id.
func (h *CampaignHandler) DeleteCampaignHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.MarketingService.Delete(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}

// ScheduleCampaignHandler handles POST /campaigns/:id/schedule with an RFC 3339
// send time in the body.
func (h *CampaignHandler) ScheduleCampaignHandler(c *gin.Context) {
	var req struct {
		SendAt time.Time `json:"send_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	campaign, err := h.MarketingService.Schedule(c.Param("id"), req.SendAt)
	if err != nil {
		var state marketing.StateError
		if errors.As(err, &state) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaign)
}
