package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/oportunia/radar/internal/analyzer"
	"github.com/oportunia/radar/internal/api"
	"github.com/oportunia/radar/internal/cache"
	"github.com/oportunia/radar/internal/config"
	"github.com/oportunia/radar/internal/logging"
	"github.com/oportunia/radar/internal/pipeline"
	"github.com/oportunia/radar/internal/scoring"
	"github.com/oportunia/radar/internal/source"
	"github.com/oportunia/radar/internal/telemetry"
	"github.com/oportunia/radar/internal/trends"
)

func main() {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		logging.Must(logging.Config{}).Fatal("Failed to load configuration", logging.Error(err))
	}

	log := logging.Must(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	defer func() { _ = log.Sync() }()

	logger := logging.NewAdapter(log)
	logger.Info("Starting radar service",
		"version", cfg.Service.Version,
		"port", cfg.Service.Port,
		"debug", cfg.Service.Debug,
	)

	tp := telemetry.NewProvider()

	resultCache, err := cache.New(cfg.Cache)
	if err != nil {
		logger.Error("Failed to connect to cache", "error", err)
		os.Exit(1)
	}
	if resultCache != nil {
		defer func() { _ = resultCache.Close() }()
		logger.Info("Result cache enabled", "address", cfg.Cache.Address, "ttl", cfg.Cache.TTL)
	}

	client := source.NewClient(cfg.Source, tp, logger)

	commentAnalyzer := analyzer.NewCommentAnalyzer(logger)
	advancedAnalyzer := analyzer.NewAdvancedAnalyzer(logger)
	scorer := scoring.NewEngine(logger)
	detector := trends.NewDetector(logger)

	enricher := pipeline.NewEnricher(client, client, commentAnalyzer, scorer, tp, logger)
	batch := pipeline.NewBatchScorer(enricher, cfg.Service.Concurrency, logger)
	logger.Info("Scoring pipeline initialized", "concurrency", cfg.Service.Concurrency)

	handler := api.NewHandler(
		commentAnalyzer, advancedAnalyzer, enricher, batch, detector,
		resultCache, tp, logger,
		cfg.Service.Name, cfg.Service.Version,
	)

	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error("Server error", "error", err)
		os.Exit(1)
	case sig := <-shutdown:
		logger.Info("Shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}

		logger.Info("Server stopped gracefully")
	}
}
