package routes

import (
	"net/http"
	"time"

	"bizly/handlers"
	"bizly/middleware"
	"bizly/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
		api.POST("/register", middleware.RequireRole(models.RoleOwner), hb.Auth.RegisterHandler)
	}
}

// RegisterCustomerRoutes registers customer book endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.GET("", hb.Customer.ListCustomersHandler)
		api.GET("/:id", hb.Customer.GetCustomerHandler)
		api.POST("", hb.Customer.CreateCustomerHandler)
		api.PUT("/:id", hb.Customer.UpdateCustomerHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Customer.DeleteCustomerHandler)
	}
}

// RegisterCatalogRoutes registers product and discount endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	products := r.Group("/api/products")
	{
		products.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		products.GET("", hb.Catalog.ListProductsHandler)
		products.GET("/:id", hb.Catalog.GetProductHandler)
		products.POST("", hb.Catalog.CreateProductHandler)
		products.PUT("/:id", hb.Catalog.UpdateProductHandler)
		products.DELETE("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Catalog.DeleteProductHandler)
	}

	discounts := r.Group("/api/discounts")
	{
		discounts.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		discounts.GET("", hb.Catalog.ListDiscountsHandler)
		discounts.GET("/check", hb.Catalog.CheckDiscountCodeHandler)
		discounts.GET("/:id", hb.Catalog.GetDiscountHandler)
		discounts.POST("", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Catalog.CreateDiscountHandler)
		discounts.PUT("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Catalog.UpdateDiscountHandler)
		discounts.DELETE("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Catalog.DeleteDiscountHandler)
	}
}

// RegisterOrderRoutes registers order endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.GET("", hb.Order.ListOrdersHandler)
		api.GET("/:id", hb.Order.GetOrderHandler)
		api.POST("", hb.Order.CreateOrderHandler)
		api.PATCH("/:id/status", hb.Order.SetOrderStatusHandler)
		api.POST("/:id/payment-intent", hb.Order.CreatePaymentIntentHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Order.DeleteOrderHandler)
	}
}

// RegisterStaffRoutes registers staff endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.GET("", hb.Staff.ListStaffHandler)
		api.GET("/:id", hb.Staff.GetStaffHandler)
		api.POST("", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Staff.CreateStaffHandler)
		api.PUT("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Staff.UpdateStaffHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleOwner), hb.Staff.DeleteStaffHandler)
	}
}

// RegisterBookingRoutes registers booking and calendar endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/availability", hb.Booking.AvailabilityHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/complete", hb.Booking.CompleteBookingHandler)
		api.PATCH("/:id/notes", hb.Booking.UpdateBookingNotesHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Booking.DeleteBookingHandler)
	}
}

// RegisterCampaignRoutes registers marketing endpoints.
func RegisterCampaignRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/campaigns")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.GET("", hb.Campaign.ListCampaignsHandler)
		api.GET("/:id", hb.Campaign.GetCampaignHandler)
		api.POST("", hb.Campaign.CreateCampaignHandler)
		api.PUT("/:id", hb.Campaign.UpdateCampaignHandler)
		api.POST("/:id/schedule", hb.Campaign.ScheduleCampaignHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleOwner, models.RoleManager), hb.Campaign.DeleteCampaignHandler)
	}
}

// RegisterDashboardRoutes registers the overview endpoint.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AdminRepo))
		api.GET("/stats", hb.Dashboard.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCampaignRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
