package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bundle-storefront/internal/client"
	"bundle-storefront/internal/config"
	"bundle-storefront/internal/logger"
	"bundle-storefront/internal/metrics"
	"bundle-storefront/internal/model"
	"bundle-storefront/internal/repository"
	"bundle-storefront/internal/server"
	"bundle-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Log)

	packageRepo, err := initCatalog(context.Background(), &cfg.Catalog, appLogger)
	if err != nil {
		appLogger.Fatalf("init catalog: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	stripeClient := client.NewStripeClient(&cfg.Stripe, appLogger)

	packageService := service.NewPackageService(packageRepo, appLogger)
	paymentService := service.NewPaymentService(
		stripeClient,
		packageRepo,
		cfg.Stripe.Currency,
		appMetrics,
		appLogger,
	)

	srv := server.NewServer(packageService, paymentService, appMetrics, appLogger, server.Options{
		PublishableKey: cfg.Stripe.PublishableKey,
		StaticDir:      cfg.StaticDir,
	})

	serverAddr := cfg.HTTP.Address()
	appLogger.Infof("Starting HTTP server on %s (environment %s, catalog %s)", serverAddr, cfg.Environment.Name, cfg.Catalog.Driver)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	appLogger.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("HTTP server shutdown error: %v", err)
	}
}

// initCatalog builds the configured catalog backend and seeds it.
func initCatalog(ctx context.Context, cfg *config.Catalog, logger *log.Logger) (repository.PackageRepository, error) {
	seed, err := loadSeed(cfg.SeedFile, logger)
	if err != nil {
		return nil, err
	}

	var repo repository.PackageRepository
	switch cfg.Driver {
	case "memory":
		repo = repository.NewMemoryPackageRepository()
	case "sqlite", "mysql":
		db, err := client.InitCatalogDB(cfg.Driver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repo = repository.NewGormPackageRepository(db)
	default:
		return nil, fmt.Errorf("unsupported catalog driver %q", cfg.Driver)
	}

	if err := repo.Seed(ctx, seed); err != nil {
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return repo, nil
}

func loadSeed(path string, logger *log.Logger) ([]*model.InsertPackage, error) {
	if path == "" {
		return repository.DefaultSeed()
	}
	logger.Infof("loading catalog seed from %s", path)
	return repository.LoadSeedFile(path)
}
