// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/shopmart/internal/config"
	"github.com/your-org/shopmart/internal/domain/catalog"
	"github.com/your-org/shopmart/internal/domain/order"
	"github.com/your-org/shopmart/internal/domain/storefront"
	"github.com/your-org/shopmart/internal/infrastructure/redis"
	"github.com/your-org/shopmart/internal/interfaces/http"
	"github.com/your-org/shopmart/internal/pkg/auth"
	"github.com/your-org/shopmart/internal/pkg/logger"
	"github.com/your-org/shopmart/internal/pkg/pdf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logs := logger.New(cfg)
	logs.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting storefront API")

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewConnection(cfg, logs)
		if err != nil {
			logs.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The catalog loads once in the background; the API serves an empty,
	// loading catalog until it completes.
	store := catalog.NewStore(logs)
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout)
		defer cancel()
		_ = store.Load(loadCtx, catalog.NewClient(cfg))
	}()

	registry := storefront.NewRegistry(storefront.Dependencies{
		Catalog: store,
		IDs:     order.NewSequenceGenerator(),
		Logger:  logs,
		Config:  cfg.Checkout,
	}, cfg.Session.TTL)
	go registry.Run(ctx, time.Minute)

	server := http.NewServer(http.Options{
		Config:   cfg,
		Logger:   logs,
		Catalog:  store,
		Registry: registry,
		Sessions: auth.NewSessionManager(cfg),
		Receipts: pdf.NewService(cfg),
		Redis:    redisClient,
	})

	go func() {
		if err := server.Start(); err != nil {
			logs.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logs.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logs.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	logs.Info("Server shutdown completed")
}
