package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/los-predictor/web/internal/config"
	"github.com/los-predictor/web/internal/estimator"
	"github.com/los-predictor/web/internal/handler"
	"github.com/los-predictor/web/internal/model"
	"github.com/los-predictor/web/internal/service"
	"go.uber.org/zap"
)

// @title Length of Stay Prediction API
// @version 1.0
// @description Serves a pre-trained random forest that estimates hospital length of stay.
// @BasePath /
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg := config.Load()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// The model is loaded once; a missing or corrupt artifact stops startup.
	est, err := estimator.Load(cfg.Model.Path, model.FeatureNames())
	if err != nil {
		logger.Fatal("Failed to load model", zap.String("path", cfg.Model.Path), zap.Error(err))
	}
	info := est.Info()
	logger.Info("Model loaded",
		zap.String("path", cfg.Model.Path),
		zap.String("type", info.Type),
		zap.String("version", info.Version),
		zap.Int("trees", info.Trees),
	)

	gin.SetMode(cfg.Server.Mode)
	svc := service.NewPredictionService(est, cfg.Model.PredictionTemplate, logger)
	router, err := handler.NewRouter(cfg.Server, svc, logger)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Exiting")
}
