package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brief-engine/internal/ai"
	"brief-engine/internal/config"
	"brief-engine/internal/logger"
	"brief-engine/internal/moodboard"
	"brief-engine/internal/store"
	"brief-engine/middleware"
	"brief-engine/routes"
	"brief-engine/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.InitLogger(cfg.GinMode)

	// Rate-limit counters and the moodboard cache live in-process unless
	// Redis is configured, in which case state is shared across instances
	var counter store.Counter = store.NewMemoryCounter()
	var cache store.Cache = store.NewMemoryCache()
	if cfg.RedisURL != "" {
		rdb, err := store.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer rdb.Close()
		counter = store.NewRedisCounter(rdb)
		cache = store.NewRedisCache(rdb)
		logger.Info("Using Redis-backed rate limiting and cache")
	}

	// No credential is a supported mode: handlers serve deterministic
	// fallback output when gen is nil
	var gen *ai.Client
	if cfg.GeminiAPIKey != "" {
		gen, err = ai.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ProviderTimeout)
		if err != nil {
			log.Fatal("Failed to initialize Gemini client:", err)
		}
		defer gen.Close()
	} else {
		logger.Warn("No GOOGLE_GEMINI_API_KEY configured, serving fallback synthesis only")
	}

	images := moodboard.NewService(cfg.UnsplashAccessKey, cache, cfg.MoodboardCacheTTL)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered", "panic", recovered,
			"request_id", middleware.GetRequestID(c))
		utils.RespondWithInternalError(c, "Internal server error", nil)
	}))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	routes.SetupBrandRoutes(router, cfg, gen, counter)
	routes.SetupReportRoutes(router, cfg, gen, counter)
	routes.SetupEmailRoutes(router, cfg, gen, counter)
	routes.SetupMoodboardRoutes(router, cfg, images, counter)
	routes.SetupCommunityRoutes(router)

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

	// Wait for interrupt signal to gracefully shutdown the server
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
