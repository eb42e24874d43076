package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"swasthya-sahayak/internal/actions"
	"swasthya-sahayak/internal/ai"
	"swasthya-sahayak/internal/config"
	"swasthya-sahayak/internal/knowledge"
	"swasthya-sahayak/internal/lang"
	"swasthya-sahayak/internal/logger"
	"swasthya-sahayak/internal/telemetry"
	"swasthya-sahayak/middleware"
	"swasthya-sahayak/routes"
	"swasthya-sahayak/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger.InitLogger(cfg)

	if cfg.TracingEnabled {
		shutdown, err := telemetry.InitTracer("swasthya-sahayak", cfg.OTLPEndpoint)
		if err != nil {
			logger.Warn("Tracing disabled, init failed", "error", err)
		} else {
			defer shutdown()
		}
	}
	metrics, err := telemetry.InitMetrics()
	if err != nil {
		logger.Warn("Metrics disabled, init failed", "error", err)
	}

	mongoClient, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	}()
	db := mongoClient.Database(cfg.DBName)

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer rdb.Close()

	geminiClient, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiTier,
		cfg.GenerationModel, cfg.EmbeddingModel)
	if err != nil {
		log.Fatal("Failed to initialize Gemini client:", err)
	}
	defer geminiClient.Close()
	geminiClient.SetMetrics(metrics)

	// Build the decision layer.
	index := knowledge.NewIndex(geminiClient, cfg.VectorDim)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := knowledge.Seed(seedCtx, index); err != nil {
		logger.Warn("Knowledge seeding incomplete, retrieval degraded", "error", err)
	}
	cancelSeed()
	logger.Info("Knowledge index ready", "documents", index.Stats())

	detector := lang.NewDetector(geminiClient)
	translator := lang.NewTranslator(geminiClient)

	registry := actions.NewRegistry(
		actions.NewFindFacility(),
		actions.NewBookAppointment(),
		actions.NewSendNotification(),
		actions.NewWeatherAlerts(),
		actions.NewScheduleReminder(),
		actions.NewCheckSchemeEligibility(),
		actions.NewPersonalizedRecommendations(),
	)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer asynqClient.Close()

	sweeper := services.NewReminderSweeper(db, asynqClient)
	if err := sweeper.Start(cfg.ReminderScanCron); err != nil {
		logger.Error("Reminder sweeper failed to start", "error", err)
	}
	defer sweeper.Stop()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RateLimitMiddleware(rdb, cfg))
	if cfg.TracingEnabled {
		router.Use(middleware.TracingMiddleware())
		router.Use(middleware.EnrichTrace())
	}
	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})
	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := mongoClient.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "mongo": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "documents": index.Stats()})
	})

	routes.SetupAssistantRoutes(router, cfg, routes.AssistantDeps{
		Detector:   detector,
		Translator: translator,
		Index:      index,
		Metrics:    metrics,
	})
	routes.SetupActionRoutes(router, routes.ActionDeps{
		Registry: registry,
		DB:       db,
		Queue:    asynqClient,
		Metrics:  metrics,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	logger.Info("Server exited")
}
