// File: ecoskip/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecoskip/config"
	"ecoskip/database"
	bookingRepoPkg "ecoskip/database/repository/booking"
	userRepoPkg "ecoskip/database/repository/user"
	"ecoskip/events"
	"ecoskip/handlers"
	"ecoskip/middleware"
	"ecoskip/models"
	"ecoskip/routes"
	"ecoskip/services/booking"
	"ecoskip/services/catalog"
	"ecoskip/services/contact"
	"ecoskip/services/pricing"
	"ecoskip/services/session"
	"ecoskip/services/user"
	"ecoskip/services/wizard"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	sessionCache := utils.GetSessionCacheClient()

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(database.DB())
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(database.DB())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to create user indexes", zap.Error(err))
	}
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to create booking indexes", zap.Error(err))
	}
	cancel()

	publisher := events.New(config.AppConfig.KafkaAddr)

	// services.
	skips := catalog.Default()
	pricer := pricing.NewCalculator(config.AppConfig.VATRateBps)
	fees := wizard.Fees{
		PermitFee: models.Money(config.AppConfig.PermitFeePence),
		TonneBag:  models.Money(config.AppConfig.TonneBagFeePence),
	}
	loc := config.Location()

	userService := user.NewUserService(userRepo, config.AppConfig.JWTTTL)

	bookingService := &booking.DefaultBookingService{
		Repo:   bookingRepo,
		Skips:  skips,
		Pricer: pricer,
		Fees:   fees,
		Events: publisher,
		Topic:  config.AppConfig.KafkaBookingTopic,
		Loc:    loc,
	}

	sessionService := &session.Service{
		Cache:    sessionCache,
		TTL:      config.AppConfig.SessionTTL,
		Skips:    skips,
		Pricer:   pricer,
		Fees:     fees,
		Bookings: bookingService,
		Loc:      loc,
	}

	contactService := contact.NewContactService(publisher, config.AppConfig.KafkaContactTopic)

	// background dependency checks for /api/health.
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, 30*time.Second, map[string]utils.Check{
		"mongo": utils.MongoCheck(database.MongoClient),
		"redis": utils.RedisCheck(sessionCache),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := &handlers.HandlerBundle{
		Users:          userService,
		UserHandler:    handlers.NewUserHandler(userService),
		BookingHandler: handlers.NewBookingHandler(bookingService),
		SessionHandler: handlers.NewSessionHandler(sessionService),
		CatalogHandler: handlers.NewCatalogHandler(skips),
		ContactHandler: handlers.NewContactHandler(contactService),
		AdminHandler:   handlers.NewAdminHandler(bookingService),
	}
	if config.AppConfig.MetricsEnabled {
		handlerBundle.Metrics = middleware.NewMetrics("ecoskip")
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3001"
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
	stopMonitor()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		logger.Warn("main: failed to close event publisher", zap.Error(err))
	}
	if err := sessionCache.Close(); err != nil {
		logger.Warn("main: failed to close redis client", zap.Error(err))
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
