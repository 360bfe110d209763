package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/enochlebabo/sparkle-afrika-deals/internal/config"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/domain"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/handler"
	"github.com/enochlebabo/sparkle-afrika-deals/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	BookingHandler   *handler.BookingHandler
	TierHandler      *handler.TierHandler
	UserHandler      *handler.UserHandler
	LocationHandler  *handler.LocationHandler
	DashboardHandler *handler.DashboardHandler
	RedisClient      *redis.Client
	NewRelicApp      *newrelic.Application
	Config           *config.Config
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.Config.Server.AllowedOrigins))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	staff := []string{string(domain.RoleCashier), string(domain.RoleAdmin)}
	admin := []string{string(domain.RoleAdmin)}

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Catalog and service areas are public reference data.
		v1.GET("/tiers", deps.TierHandler.GetAll)
		v1.GET("/tiers/:id", deps.TierHandler.Get)
		v1.GET("/locations", deps.LocationHandler.GetAll)

		authed := v1.Group("")
		authed.Use(middleware.Authenticate(deps.Config.Auth.JWTSecret))
		// Idempotency keys are scoped per user, so this runs after auth.
		authed.Use(middleware.Idempotency(deps.RedisClient))
		{
			// User routes.
			users := authed.Group("/users")
			{
				users.POST("/register", deps.UserHandler.Register)
				users.GET("/me", deps.UserHandler.Me)
				users.GET("", middleware.RequireRoles(admin...), deps.UserHandler.GetAll)
			}

			// Catalog management.
			tiers := authed.Group("/tiers", middleware.RequireRoles(admin...))
			{
				tiers.POST("", deps.TierHandler.Create)
				tiers.PUT("/:id", deps.TierHandler.Update)
			}

			// Booking routes.
			bookings := authed.Group("/bookings")
			{
				bookings.POST("", deps.BookingHandler.Create)
				bookings.GET("", middleware.RequireRoles(staff...), deps.BookingHandler.GetAll)
				bookings.GET("/mine", deps.BookingHandler.GetMine)
				bookings.GET("/:id", deps.BookingHandler.Get)
				bookings.GET("/:id/receipt", deps.BookingHandler.GetReceipt)
				bookings.PATCH("/:id/status", middleware.RequireRoles(staff...), deps.BookingHandler.UpdateStatus)
				bookings.PATCH("/:id/payment", middleware.RequireRoles(staff...), deps.BookingHandler.UpdatePaymentStatus)
			}

			// Role dashboard.
			authed.GET("/dashboard", deps.DashboardHandler.Get)
		}
	}

	return router
}
