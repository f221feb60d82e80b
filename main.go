package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bizly/config"
	"bizly/cron"
	"bizly/database"
	adminRepoPkg "bizly/database/repository/admin"
	bookingRepoPkg "bizly/database/repository/booking"
	campaignRepoPkg "bizly/database/repository/campaign"
	customerRepoPkg "bizly/database/repository/customer"
	discountRepoPkg "bizly/database/repository/discount"
	orderRepoPkg "bizly/database/repository/order"
	productRepoPkg "bizly/database/repository/product"
	staffRepoPkg "bizly/database/repository/staff"
	"bizly/handlers"
	"bizly/middleware"
	"bizly/routes"
	"bizly/schedule"
	"bizly/services/auth"
	"bizly/services/booking"
	"bizly/services/catalog"
	"bizly/services/customer"
	"bizly/services/marketing"
	"bizly/services/order"
	"bizly/services/staff"
	"bizly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Business hours drive the booking calendar; a bad value is a deploy
	// mistake, so fail loudly.
	open, err := schedule.Parse(config.AppConfig.BusinessOpen)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_OPEN: %v", err)
	}
	closeAt, err := schedule.Parse(config.AppConfig.BusinessClose)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid BUSINESS_CLOSE: %v", err)
	}
	hours := schedule.BusinessHours{Open: open, Close: closeAt}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	discountRepo := discountRepoPkg.NewMongoDiscountRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	campaignRepo := campaignRepoPkg.NewMongoCampaignRepo()

	// Task queue client for scheduled campaign sends.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	authService := &auth.DefaultAuthService{Repo: adminRepo}
	customerService := &customer.DefaultCustomerService{Repo: customerRepo}
	catalogService := &catalog.DefaultCatalogService{
		Products:  productRepo,
		Discounts: discountRepo,
	}
	orderService := &order.DefaultOrderService{
		Repo:      orderRepo,
		Products:  productRepo,
		Discounts: discountRepo,
	}
	staffService := &staff.DefaultStaffService{Repo: staffRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		Hours:       hours,
		Granularity: config.AppConfig.SlotGranularity,
	}
	marketingService := &marketing.DefaultMarketingService{
		Repo:      campaignRepo,
		Customers: customerRepo,
		Queue:     queueClient,
	}

	cron.InitCampaignWorker(marketingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminRepo: adminRepo,
		Auth:      handlers.NewAuthHandler(authService),
		Customer:  handlers.NewCustomerHandler(customerService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Order:     handlers.NewOrderHandler(orderService),
		Staff:     handlers.NewStaffHandler(staffService),
		Booking:   handlers.NewBookingHandler(bookingService),
		Campaign:  handlers.NewCampaignHandler(marketingService),
		Dashboard: handlers.NewDashboardHandler(orderRepo, bookingRepo, customerRepo, productRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
