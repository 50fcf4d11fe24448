package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpLayer "github.com/sooryathamilselvan/LoanPrediction/http"
	"github.com/sooryathamilselvan/LoanPrediction/logger"
	"github.com/sooryathamilselvan/LoanPrediction/repository"
	"github.com/sooryathamilselvan/LoanPrediction/service"
)

func main() {
	zapLogger, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("LOG_DEBUG") == "true")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	bankRepo := repository.NewBankRepositoryMemory()

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		zapLogger.Info("using redis result cache", zap.String("addr", addr))
	} else {
		cache = repository.NewMemoryCache()
		zapLogger.Info("using in-memory result cache")
	}

	emiService := service.NewEMIService()
	eligibilityService := service.NewEligibilityService(emiService)
	improvementService := service.NewImprovementService()
	recommendationService := service.NewRecommendationService(
		bankRepo, eligibilityService, emiService, improvementService, cache, zapLogger,
	)

	var generator service.ContentGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		g, err := service.NewGeminiGenerator(context.Background(), apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			zapLogger.Warn("gemini unavailable, advisory endpoints use fallback text", zap.Error(err))
		} else {
			generator = g
		}
	} else {
		zapLogger.Info("GEMINI_API_KEY not set, advisory endpoints use fallback text")
	}
	advisorService := service.NewAdvisorService(generator, zapLogger)

	recommendationHandler := httpLayer.NewRecommendationHandler(recommendationService, zapLogger)
	bankHandler := httpLayer.NewBankHandler(bankRepo, zapLogger)
	advisorHandler := httpLayer.NewAdvisorHandler(recommendationService, advisorService, zapLogger)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/recommendations",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			zapLogger,
			http.HandlerFunc(recommendationHandler.Recommend),
		),
	)

	mux.Handle(
		"/loan/banks/",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			zapLogger,
			http.HandlerFunc(bankHandler.Details),
		),
	)

	mux.Handle(
		"/loan/insights",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			zapLogger,
			http.HandlerFunc(advisorHandler.Insights),
		),
	)

	mux.Handle(
		"/loan/advisor",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			zapLogger,
			http.HandlerFunc(advisorHandler.Chat),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("loan recommendation API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		zapLogger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		zapLogger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server exited")
}
