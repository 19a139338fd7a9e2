package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"restoration-financials/internal/config"
	"restoration-financials/internal/fixtures"
	"restoration-financials/internal/httpserver"
	"restoration-financials/internal/kv"
	customerrepo "restoration-financials/internal/repository/customer"
	jobrepo "restoration-financials/internal/repository/job"
	customersvc "restoration-financials/internal/service/customer"
	"restoration-financials/internal/service/report"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	ds, err := fixtures.Load(ctx, cfg.DataDir)
	if err != nil {
		logger.Fatalf("load dataset from %s: %v", cfg.DataDir, err)
	}
	logger.Printf("loaded %d customers and %d jobs from %s", len(ds.Customers), len(ds.Jobs), cfg.DataDir)

	var client *redis.Client
	if cfg.CacheEnabled() {
		client, err = kv.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer client.Close()
	}

	customerRepo := customerrepo.NewMemory(ds.Customers, logger)
	jobRepo := jobrepo.NewMemory(ds.Jobs, logger)
	reportService := report.New(jobRepo, report.NewCache(client, cfg.ReportCacheTTL, logger), nil)
	if err := reportService.Invalidate(ctx); err != nil {
		logger.Fatalf("invalidate report cache: %v", err)
	}
	customerService := customersvc.New(customerRepo, jobRepo)

	metrics := httpserver.NewMetrics()
	metrics.ObserveDataset(len(ds.Customers), len(ds.Jobs))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		ReportSvc:   reportService,
		CustomerSvc: customerService,
		Jobs:        jobRepo,
		Metrics:     metrics,
		Ready: func(ctx context.Context) error {
			if client == nil {
				return nil
			}
			return client.Ping(ctx).Err()
		},
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
