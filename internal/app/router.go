package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"cabadmin/internal/handler"
	"cabadmin/internal/middleware"
	"cabadmin/internal/redis"
	"cabadmin/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler         *handler.AuthHandler
	DashboardHandler    *handler.DashboardHandler
	UserHandler         *handler.UserHandler
	CabHandler          *handler.CabHandler
	BookingHandler      *handler.BookingHandler
	ModificationHandler *handler.ModificationHandler
	OfferHandler        *handler.OfferHandler
	ImageHandler        *handler.ImageHandler
	ProfileHandler      *handler.ProfileHandler
	Authenticator       middleware.Authenticator
	ResponseCache       redis.ResponseCacheInterface
	NewRelicApp         *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")

	// Public auth routes.
	auth := v1.Group("/auth")
	{
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/forgot-password", deps.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", deps.AuthHandler.ResetPassword)
		auth.POST("/register-admin", deps.AuthHandler.RegisterAdmin)
	}

	// Everything else requires a session.
	guarded := v1.Group("")
	guarded.Use(
		middleware.SessionAuth(deps.Authenticator),
		middleware.NewRelicSessionAttributes(),
		middleware.IdempotencyMiddleware(deps.ResponseCache),
	)
	{
		guarded.POST("/auth/logout", deps.AuthHandler.Logout)
		guarded.GET("/session", deps.AuthHandler.Session)
		guarded.GET("/dashboard", deps.DashboardHandler.Get)

		// User routes.
		users := guarded.Group("/users", middleware.RequireSection(service.SectionUsers))
		{
			users.GET("", deps.UserHandler.List)
			users.GET("/:id", deps.UserHandler.Get)
			users.DELETE("/:id", deps.UserHandler.Delete)
		}

		// Cab routes.
		cabs := guarded.Group("/cabs", middleware.RequireSection(service.SectionCabs))
		{
			cabs.POST("", deps.CabHandler.Register)
			cabs.GET("", deps.CabHandler.List)
			cabs.GET("/:id", deps.CabHandler.Get)
			cabs.PUT("/:id", deps.CabHandler.Update)
			cabs.DELETE("/:id", deps.CabHandler.Delete)
		}

		// Booking routes.
		bookings := guarded.Group("/bookings", middleware.RequireSection(service.SectionBookings))
		{
			bookings.GET("", deps.BookingHandler.List)
			bookings.PUT("/:id/status", deps.BookingHandler.UpdateStatus)
			bookings.GET("/:id/history", deps.BookingHandler.History)
			bookings.POST("/:id/modifications", deps.ModificationHandler.Open)
		}

		// Modification routes.
		modifications := guarded.Group("/modifications", middleware.RequireSection(service.SectionBookings))
		{
			modifications.GET("/:id", deps.ModificationHandler.Get)
			modifications.PATCH("/:id", deps.ModificationHandler.Edit)
			modifications.DELETE("/:id", deps.ModificationHandler.Cancel)
			modifications.POST("/:id/calculate", deps.ModificationHandler.Calculate)
			modifications.GET("/:id/cabs", deps.ModificationHandler.Get)
			modifications.POST("/:id/cabs/more", deps.ModificationHandler.LoadMore)
			modifications.POST("/:id/select", deps.ModificationHandler.Select)
			modifications.POST("/:id/save", deps.ModificationHandler.Save)
		}

		// Offer routes.
		offers := guarded.Group("/offers", middleware.RequireSection(service.SectionOffers))
		{
			offers.GET("", deps.OfferHandler.List)
			offers.POST("", deps.OfferHandler.Create)
			offers.GET("/:id", deps.OfferHandler.Get)
			offers.PUT("/:id", deps.OfferHandler.Update)
			offers.DELETE("/:id", deps.OfferHandler.Delete)
		}

		guarded.POST("/images", deps.ImageHandler.Upload)

		guarded.GET("/profile", deps.ProfileHandler.Get)
		guarded.PUT("/profile", deps.ProfileHandler.Update)
		guarded.PUT("/account/password", deps.ProfileHandler.ChangePassword)
	}

	return router
}
