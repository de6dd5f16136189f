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
	"github.com/your-org/pos-terminal/internal/config"
	"github.com/your-org/pos-terminal/internal/domain/catalog"
	"github.com/your-org/pos-terminal/internal/domain/pos"
	"github.com/your-org/pos-terminal/internal/domain/receipt"
	"github.com/your-org/pos-terminal/internal/infrastructure/redis"
	"github.com/your-org/pos-terminal/internal/interfaces/http"
	"github.com/your-org/pos-terminal/internal/pkg/logger"
	"github.com/your-org/pos-terminal/internal/pkg/pdf"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logs := logger.New(cfg)
	logs.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"currency":    cfg.POS.Currency,
		"auth":        cfg.AuthEnabled(),
	}).Infof("starting %s", cfg.App.Name)

	// Catalog is seeded once per process; stock lives only in memory
	seed, err := catalog.LoadSeedFile(cfg.POS.CatalogFile)
	if err != nil {
		logs.WithError(err).Fatal("failed to load catalog seed")
	}

	cat, err := catalog.New(seed)
	if err != nil {
		logs.WithError(err).Fatal("invalid catalog seed")
	}

	receipts := receipt.NewFileLog(cfg.POS.ReceiptLogPath)
	session := pos.NewSession(cat, receipts, cfg, logs)

	logs.WithFields(logrus.Fields{
		"products":    cat.Len(),
		"receipt_log": receipts.Path(),
	}).Info("terminal ready")

	// Redis is optional and only backs the rate limiter
	var limiter http.RateCounter
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(context.Background(), cfg, logs)
		if err != nil {
			logs.WithError(err).Fatal("failed to connect to Redis")
		}
		defer redisClient.Close()
		limiter = redisClient
	}

	server := http.NewServer(cfg, session, pdf.NewService(cfg), limiter, logs)

	go func() {
		if err := server.Start(); err != nil {
			logs.WithError(err).Fatal("failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logs.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logs.WithError(err).Error("failed to shutdown HTTP server gracefully")
	}

	logs.Info("server shutdown completed")
}
