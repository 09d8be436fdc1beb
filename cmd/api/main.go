package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swiftmedhelp/backend/internal/adapters/cache"
	"github.com/swiftmedhelp/backend/internal/adapters/catalog"
	"github.com/swiftmedhelp/backend/internal/adapters/handoff"
	"github.com/swiftmedhelp/backend/internal/adapters/reviews"
	"github.com/swiftmedhelp/backend/internal/api/handlers"
	"github.com/swiftmedhelp/backend/internal/api/middleware"
	"github.com/swiftmedhelp/backend/internal/api/routes"
	"github.com/swiftmedhelp/backend/internal/application/services"
	"github.com/swiftmedhelp/backend/internal/domain/providers"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
	"github.com/swiftmedhelp/backend/internal/infrastructure/clients/redis"
	"github.com/swiftmedhelp/backend/internal/infrastructure/observability"
	"github.com/swiftmedhelp/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize Redis client, continuing without it")
		// Continue without Redis - caching and session handoff fall back
		// to in-process stores
	} else {
		defer redisClient.Close()
		logger.Info().Msg("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize catalog adapters from the seeded fixture
	fixture := catalog.Default()

	hospitalAdapter := catalog.NewHospitalAdapter(fixture)
	doctorAdapter := catalog.NewDoctorAdapter(fixture)
	departmentAdapter := catalog.NewDepartmentAdapter(fixture)
	consultationTypeAdapter := catalog.NewConsultationTypeAdapter(fixture)
	referenceAdapter := catalog.NewReferenceAdapter(fixture)

	// Handoff and review stores prefer Redis so drafts and reviews
	// survive process restarts
	var handoffStore providers.HandoffStore
	var reviewAdapter repositories.ReviewRepository
	if redisClient != nil {
		handoffStore = handoff.NewRedisAdapter(redisClient, cfg.Session.HandoffTTL)
		reviewAdapter = reviews.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis-backed handoff and review stores initialized")
	} else {
		handoffStore = handoff.NewMemoryAdapter()
		reviewAdapter = reviews.NewMemoryAdapter(fixture.Reviews)
		logger.Info().Msg("in-memory handoff and review stores initialized")
	}

	// Initialize services
	searchService := services.NewSearchService(
		doctorAdapter,
		hospitalAdapter,
		departmentAdapter,
		consultationTypeAdapter,
	)
	bookingService := services.NewBookingService(doctorAdapter, hospitalAdapter, handoffStore)
	opCardService := services.NewOPCardService(handoffStore)
	feedbackService := services.NewFeedbackService(reviewAdapter, doctorAdapter)

	// Initialize handlers
	hospitalHandler := handlers.NewHospitalHandler(searchService, hospitalAdapter, departmentAdapter, metrics)
	doctorHandler := handlers.NewDoctorHandler(searchService, doctorAdapter, metrics)
	referenceHandler := handlers.NewReferenceHandler(referenceAdapter, departmentAdapter, consultationTypeAdapter, cfg.Catalog.MaxConsultationFee)
	bookingHandler := handlers.NewBookingHandler(bookingService, opCardService, metrics)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, cacheProvider)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		logger.Info().Msg("cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		hospitalHandler,
		doctorHandler,
		referenceHandler,
		bookingHandler,
		feedbackHandler,
		cacheMiddleware,
		cfg.Session.CookieName,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
