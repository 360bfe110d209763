package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/app"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/config"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/handler"
	internalRedis "github.com/enochlebabo/sparkle-afrika-deals/internal/redis"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/repository/postgres"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/service"
)

func main() {
	// Load .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	userRepo := postgres.NewUserRepository(db)
	tierRepo := postgres.NewTierRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	locationRepo := postgres.NewLocationRepository(db)

	// Initialize services.
	notificationService := service.NewNotificationService()
	receiptService := service.NewReceiptService(notificationService)
	pricingEngine := service.NewPricingEngine()
	loyaltyEvaluator := service.NewLoyaltyEvaluator()
	tierService := service.NewTierService(tierRepo, cacheStore)
	locationService := service.NewLocationService(locationRepo, cacheStore)
	bookingService := service.NewBookingService(db, bookingRepo, tierService, pricingEngine, loyaltyEvaluator, lockStore, notificationService)
	dashboardService := service.NewDashboardService(bookingRepo, userRepo, tierRepo, loyaltyEvaluator)

	// Initialize handlers.
	userHandler := handler.NewUserHandler(userRepo)
	tierHandler := handler.NewTierHandler(tierService)
	bookingHandler := handler.NewBookingHandler(bookingService, tierService, receiptService)
	locationHandler := handler.NewLocationHandler(locationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		BookingHandler:   bookingHandler,
		TierHandler:      tierHandler,
		UserHandler:      userHandler,
		LocationHandler:  locationHandler,
		DashboardHandler: dashboardHandler,
		RedisClient:      redisClient,
		NewRelicApp:      nrApp,
		Config:           cfg,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
