// File: concierge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	"concierge/database"
	bookingsRepo "concierge/database/repository/bookings"
	catalogRepo "concierge/database/repository/catalog"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/routes"
	"concierge/services/assistant"
	"concierge/services/notification"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitEventClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewMongoCatalogRepo(utils.GetCacheClient())
	bookings := bookingsRepo.NewMongoBookingRepo()

	// services.
	notifier := notification.NewRedisNotificationService(
		utils.GetEventClient(),
		config.AppConfig.EventChannel,
	)
	assistantService := assistant.NewAssistantService(
		catalog,
		bookings,
		notifier,
		logger,
		config.AppConfig.DeliveryFee,
		config.AppConfig.DefaultCurrency,
	)

	assistantHandler := handlers.NewAssistantHandler(assistantService, logger)
	bookingHandler := handlers.NewBookingHandler(bookings, logger)
	eventsHandler := handlers.NewEventsHandler(
		utils.GetEventClient(),
		config.AppConfig.EventChannel,
		logger,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleTool:   assistantHandler.HandleTool,
		EndSession:   assistantHandler.EndSession,
		GetBooking:   bookingHandler.GetBooking,
		ListBookings: bookingHandler.ListBookings,
		IssueToken:   handlers.IssueToken,
		StreamEvents: eventsHandler.Stream,
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
