// File: bookease/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/gin-gonic/gin"

	"bookease/config"
	"bookease/handlers"
	"bookease/middleware"
	"bookease/pubsub"
	"bookease/routes"
	"bookease/services/attendee"
	"bookease/services/booking"
	"bookease/services/catalog"
	"bookease/services/user"
	"bookease/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRegistryStore()
	utils.StartHealthMonitor(utils.GetRegistryClient())

	// In-process event plumbing: the wizard publishes domain events, the
	// attendee registry subscribes.
	wmLogger := watermill.NewStdLogger(false, false)
	pubSub := pubsub.NewGoChannelPubSub(wmLogger)
	eventBus, err := pubsub.NewEventBus(pubSub)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to create event bus: %v", err)
	}

	// Services.
	ledger := booking.NewLedger(eventBus, logger)
	sessionService := booking.NewSessionService(ledger, eventBus, logger)
	catalogService := catalog.NewService(logger)
	authService := user.NewAuthService(logger)

	registryStore := attendee.NewRedisStore(utils.GetRegistryClient())
	registry := attendee.NewRegistry(registryStore, logger)

	eventRouter, err := pubsub.NewRouter(pubSub, []cqrs.EventHandler{
		attendee.BookingConfirmedHandler(registry),
	}, wmLogger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to create event router: %v", err)
	}

	routerCtx, routerCancel := context.WithCancel(context.Background())
	defer routerCancel()
	go func() {
		if err := eventRouter.Run(routerCtx); err != nil {
			logger.Sugar().Fatalf("main: event router stopped: %v", err)
		}
	}()
	<-eventRouter.Running()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := handlers.NewHandlerBundle(
		sessionService,
		ledger,
		catalogService,
		registry,
		authService,
	)
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

	routerCancel()
	logger.Sugar().Info("main: server stopped gracefully")
}
