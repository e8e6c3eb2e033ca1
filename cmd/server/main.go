package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"cabadmin/internal/app"
	"cabadmin/internal/broker"
	"cabadmin/internal/config"
	"cabadmin/internal/handler"
	"cabadmin/internal/logger"
	internalRedis "cabadmin/internal/redis"
	"cabadmin/internal/repository"
	"cabadmin/internal/repository/postgres"
	"cabadmin/internal/service"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logger.Setup(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logrus.WithError(err).Warn("failed to initialize New Relic")
		} else {
			logrus.WithField("app", cfg.NewRelic.AppName).Info("New Relic enabled")
		}
	}

	// The activity log is optional: the dashboard works without it.
	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = app.NewDatabase(ctx, cfg.Database, nrApp)
		if err != nil {
			logrus.WithError(err).Warn("activity log disabled: database unavailable")
			db = nil
		} else if err := postgres.EnsureSchema(ctx, db); err != nil {
			logrus.Fatalf("failed to prepare activity schema: %v", err)
		} else {
			defer db.Close()
			logrus.Info("Connected to PostgreSQL")
		}
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logrus.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	logrus.Info("Connected to Redis")

	// Event publishing is optional.
	var publisher service.EventPublisher
	if cfg.Broker.URL != "" {
		p, err := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			logrus.WithError(err).Warn("event publishing disabled: broker unavailable")
		} else {
			defer p.Close()
			publisher = p
			logrus.WithField("exchange", cfg.Broker.Exchange).Info("Connected to RabbitMQ")
		}
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, publisher, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("server forced to shutdown: %v", err)
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	logrus.Info("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(
	db *sql.DB,
	redisClient *redis.Client,
	publisher service.EventPublisher,
	nrApp *newrelic.Application,
	cfg *config.Config,
) *http.Server {
	// Initialize Redis stores.
	sessionStore := internalRedis.NewSessionStore(redisClient, cfg.Session.TTL)
	modificationStore := internalRedis.NewModificationStore(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	var activityRepo repository.ActivityRepository
	if db != nil {
		activityRepo = postgres.NewActivityRepository(db)
	}

	// Remote services.
	upstream := service.GatewayUpstream(app.NewUpstreamClient(cfg.Upstream, nrApp))

	// Initialize services.
	notificationService := service.NewNotificationService(publisher)
	activityService := service.NewActivityService(activityRepo, notificationService, cacheStore)
	tokens := service.NewSessionTokens(cfg.Session.Secret, cfg.Session.TTL)
	authService := service.NewAuthService(upstream, sessionStore, tokens, activityService)
	profileService := service.NewProfileService(upstream, sessionStore, activityService)
	dashboardService := service.NewDashboardService(upstream, cacheStore, activityService)
	userService := service.NewUserService(upstream, activityService)
	cabService := service.NewCabService(upstream, activityService)
	bookingService := service.NewBookingService(upstream, activityService)
	modificationService := service.NewModificationService(upstream, modificationStore, lockStore, activityService)
	offerService := service.NewOfferService(upstream, activityService)
	imageService := service.NewImageService(upstream)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:         handler.NewAuthHandler(authService),
		DashboardHandler:    handler.NewDashboardHandler(dashboardService),
		UserHandler:         handler.NewUserHandler(userService),
		CabHandler:          handler.NewCabHandler(cabService),
		BookingHandler:      handler.NewBookingHandler(bookingService, activityService),
		ModificationHandler: handler.NewModificationHandler(modificationService),
		OfferHandler:        handler.NewOfferHandler(offerService),
		ImageHandler:        handler.NewImageHandler(imageService),
		ProfileHandler:      handler.NewProfileHandler(profileService),
		Authenticator:       authService,
		ResponseCache:       cacheStore,
		NewRelicApp:         nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
