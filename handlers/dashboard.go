package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	bookingRepo "bizly/database/repository/booking"
	customerRepo "bizly/database/repository/customer"
	orderRepo "bizly/database/repository/order"
	productRepo "bizly/database/repository/product"
	"bizly/models"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const statsCacheKey = "dashboard:stats"
const statsCacheTTL = 30 * time.Second

// DashboardHandler serves the overview screen's aggregate numbers.
type DashboardHandler struct {
	Orders    orderRepo.OrderRepository
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Products  productRepo.ProductRepository
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(
	orders orderRepo.OrderRepository,
	bookings bookingRepo.BookingRepository,
	customers customerRepo.CustomerRepository,
	products productRepo.ProductRepository,
) *DashboardHandler {
	return &DashboardHandler{
		Orders:    orders,
		Bookings:  bookings,
		Customers: customers,
		Products:  products,
	}
}

// StatsHandler handles GET /dashboard/stats. Results are cached briefly since
// the overview polls and the numbers tolerate 30 seconds of staleness.
func (h *DashboardHandler) StatsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ctx := context.Background()

	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, statsCacheKey).Result(); err == nil {
		var stats models.DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			c.JSON(http.StatusOK, stats)
			return
		}
	}

	orderStats, err := h.Orders.StatsByStatus()
	if err != nil {
		logger.Error("Order stats failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	bookingsToday, err := h.Bookings.CountByDate(today)
	if err != nil {
		logger.Error("Booking count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	customers, err := h.Customers.Count()
	if err != nil {
		logger.Error("Customer count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	products, err := h.Products.Count()
	if err != nil {
		logger.Error("Product count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats := models.DashboardStats{
		Orders:        orderStats,
		BookingsToday: bookingsToday,
		Customers:     customers,
		Products:      products,
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := cache.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
			logger.Warn("Failed to cache dashboard stats", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, stats)
}
