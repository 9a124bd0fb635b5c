package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/simplemsg/simplemsg-go/internal/api/router"
	appconfig "github.com/simplemsg/simplemsg-go/internal/config"
	"github.com/simplemsg/simplemsg-go/internal/http/handlers"
	"github.com/simplemsg/simplemsg-go/internal/observability/metrics"
	"github.com/simplemsg/simplemsg-go/pkg/logging"
	"github.com/simplemsg/simplemsg-go/pkg/simplemsg"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting simplemsg webhook receiver",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.WebhookSecret == "" {
		logger.Error("SIMPLEMSG_WEBHOOK_SECRET is required")
		os.Exit(1)
	}

	var fetcher handlers.MessageFetcher
	if cfg.FetchMessages {
		client, err := simplemsg.New(simplemsg.Config{
			BaseURL: cfg.APIBaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.RequestTimeout,
			Logger:  logger.Logger,
		})
		if err != nil {
			logger.Error("failed to build API client", "error", err)
			os.Exit(1)
		}
		fetcher = client
	}

	webhookMetrics := metrics.NewWebhookMetrics(prometheus.DefaultRegisterer)
	webhookHandler := handlers.NewWebhookHandler(cfg.WebhookSecret, fetcher, webhookMetrics, logger)

	r := router.New(&router.Config{
		Logger:         logger,
		WebhookHandler: webhookHandler,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
