package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/tnsurya7/newtons-labs/internal/api/handlers"
	"github.com/tnsurya7/newtons-labs/internal/api/middleware"
	"github.com/tnsurya7/newtons-labs/internal/cache"
	"github.com/tnsurya7/newtons-labs/internal/catalog"
	"github.com/tnsurya7/newtons-labs/internal/config"
	healthchecks "github.com/tnsurya7/newtons-labs/internal/health"
	"github.com/tnsurya7/newtons-labs/internal/metrics"
	"github.com/tnsurya7/newtons-labs/internal/repositories"
	redisrepo "github.com/tnsurya7/newtons-labs/internal/repositories/redis"
	"github.com/tnsurya7/newtons-labs/internal/services"
	"github.com/tnsurya7/newtons-labs/internal/telemetry"
	"github.com/tnsurya7/newtons-labs/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on the environment")
	}

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	slog.SetDefault(logger)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Init(ctx, &cfg.Telemetry)
	if err != nil {
		logger.Error("Failed to initialise tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Postgres is optional: without it checkout runs in mock mode and search
	// falls back to the embedded catalog.
	var repo *repositories.Repository
	if cfg.Database.Configured() {
		repo, err = repositories.NewRepository(&cfg.Database)
		if err != nil {
			logger.Error("Failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer repo.Close()
		logger.Info("✅ Connected to postgres")
	} else {
		logger.Warn("⚠️ Database not configured, running in mock-booking mode")
	}

	// Redis is optional too: it backs the search cache and the login rate
	// limiter, both of which degrade gracefully without it.
	var redisClient *redis.Client
	if cfg.RedisConnect.Configured() {
		redisClient, err = cache.NewClient(ctx, &cfg.RedisConnect)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Info("✅ Connected to redis")
	} else {
		logger.Warn("⚠️ Redis not configured, search cache and login rate limiting disabled")
	}

	var emailService sendgrid.EmailService
	if cfg.SendGrid.Configured() {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		logger.Info("✅ SendGrid transport configured")
	} else {
		logger.Warn("⚠️ SendGrid not configured, emails will be logged instead of sent")
	}

	fallbackCatalog, err := catalog.Load()
	if err != nil {
		logger.Error("Failed to load embedded catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Services
	notifier := services.NewNotificationDispatcher(emailService, &cfg.SendGrid)

	var searchCache cache.Cache
	var rateLimiter *redisrepo.RateLimiter
	if redisClient != nil {
		searchCache = cache.NewRedisCache(redisClient, cfg.Cache.DefaultTTL)
		rateLimiter = redisrepo.NewRateLimiter(redisClient, cfg.RateConfig)
	}

	var bookingService services.BookingService
	var searchService services.SearchService
	var userService services.UserService

	if repo != nil {
		bookingService = services.NewBookingService(repo.Booking, repo.Activity, notifier)
		searchService = services.NewSearchService(repo.Catalog, fallbackCatalog, searchCache, cfg.Cache.SearchTTL)
		userService = services.NewUserService(repo.User, rateLimiter, &cfg.Security)
	} else {
		bookingService = services.NewBookingService(nil, nil, notifier)
		searchService = services.NewSearchService(nil, fallbackCatalog, searchCache, cfg.Cache.SearchTTL)
	}

	cartService := services.NewCartService(cfg.Cart.SnapshotDir)
	visitService := services.NewVisitService(notifier)
	locationProvider := services.NewStaticLocationProvider()

	// Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	cartHandler := handlers.NewCartHandler(cartService)
	searchHandler := handlers.NewSearchHandler(searchService)
	visitHandler := handlers.NewVisitHandler(visitService)
	locationHandler := handlers.NewLocationHandler(locationProvider)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	h, err := healthchecks.New(cfg)
	if err != nil {
		logger.Error("Failed to set up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/bookings", bookingHandler.CreateBooking())
	mux.Handle("GET /api/v1/bookings/{bookingId}", bookingHandler.GetBooking())

	mux.Handle("GET /api/v1/search", searchHandler.Search())

	mux.Handle("POST /api/v1/bookings/home-visit", visitHandler.BookHomeVisit())
	mux.Handle("POST /api/v1/bookings/consultation", visitHandler.BookConsultation())
	mux.Handle("POST /api/v1/support/callback", visitHandler.RequestCallback())
	mux.Handle("GET /api/v1/locations/nearby", locationHandler.NearbyCentres())

	mux.Handle("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	mux.Handle("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	mux.Handle("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	mux.Handle("DELETE /api/v1/cart/items/{itemId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))

	// Auth endpoints need persistence.
	if repo != nil {
		authHandler := handlers.NewAuthHandler(userService)
		mux.Handle("POST /api/v1/auth/register", authHandler.Register())
		mux.Handle("POST /api/v1/auth/login", authHandler.Login())
	}

	mux.Handle("GET /health", h.Handler())
	mux.Handle("GET /metrics", metrics.Handler())

	// Metrics sit directly around the mux so the matched route pattern is
	// visible on the request after dispatch.
	handler := otelhttp.NewHandler(middleware.Logging(metrics.Middleware(mux)), "newtons-labs")

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("🚀 Server starting", slog.String("address", cfg.HTTPServer.Addr), slog.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to start server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	<-done

	logger.Info("🛑 Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server gracefully", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("Failed to flush traces", slog.String("error", err.Error()))
	}

	logger.Info("✅ Server shutdown complete")
}

func setupLogger(env string) *slog.Logger {

	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
