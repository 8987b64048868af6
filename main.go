package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"home-maintenance-server/config"
	"home-maintenance-server/database"
	"home-maintenance-server/jobs"
	"home-maintenance-server/logger"
	"home-maintenance-server/middleware"
	"home-maintenance-server/notifications"
	"home-maintenance-server/repository"
	"home-maintenance-server/routes"
	"home-maintenance-server/services"
	ws "home-maintenance-server/websocket"
)

const maxBodyBytes = 1 << 20

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init("home-maintenance-server", cfg.Server.Env, cfg.Log.Level)
	if envErr != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer database.Close(db)

	redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Repositories
	requestRepo := repository.NewServiceRequestRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	contactRepo := repository.NewContactRepository(db)

	sessions := services.NewSessionService(
		repository.NewSessionStore(redisClient, time.Duration(cfg.Session.TTLHours)*time.Hour),
		cfg.Session,
	)

	// Admin live feed
	hub := ws.NewHub()
	go hub.Run(ctx)

	// Booking confirmations go out over WhatsApp when it is configured
	var sender notifications.TextSender
	if cfg.WhatsApp.Enabled() {
		whatsapp, err := notifications.NewWhatsAppCloudSender(cfg.WhatsApp)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure WhatsApp sender")
		}
		sender = whatsapp
	} else {
		log.Warn().Msg("⚠️ WhatsApp is not configured, booking confirmations will be skipped")
	}

	handlers := &routes.Handlers{
		Bookings: services.NewBookingService(requestRepo, userRepo, notifications.NewBookingNotifier(sender), hub),
		Resolver: services.NewIdentityResolver(requestRepo),
		Reviews:  services.NewReviewService(requestRepo, reviewRepo),
		Catalog:  services.NewCatalogService(serviceRepo),
		Areas:    services.NewAreaService(areaRepo),
		Contact:  services.NewContactService(contactRepo),
		Users:    services.NewUserService(userRepo),
		Sessions: sessions,
		Cookie: routes.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		Hub:      hub,
		Upgrader: ws.NewUpgrader(cfg.Server.AllowedOrigins),
	}

	// Set Gin mode
	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	limiter := middleware.NewRateLimiter()
	limiter.StartCleanup(ctx, 10*time.Minute)

	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware(cfg.Server.Env == "production"))
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(middleware.BodyLimitMiddleware(maxBodyBytes))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.SessionMiddleware(sessions, cfg.Session.CookieName))
	router.Use(middleware.AuditLogMiddleware())
	router.Use(middleware.RateLimitMiddleware(limiter))

	routes.RegisterRoutes(router, handlers)

	// Start background jobs
	statsJob := jobs.NewStatsJob(requestRepo, hub, time.Duration(cfg.Jobs.StatsIntervalSeconds)*time.Second)
	statsJob.Start()
	defer statsJob.Stop()

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("🚀 Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("🛑 Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ Server shutdown failed")
	}
}
