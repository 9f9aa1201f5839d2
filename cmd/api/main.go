package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pawhaven/petadoption-backend/api/routes"
	adoptionsvc "github.com/pawhaven/petadoption-backend/internal/adoptions"
	"github.com/pawhaven/petadoption-backend/internal/assets"
	pendingpetsvc "github.com/pawhaven/petadoption-backend/internal/pendingpets"
	petsvc "github.com/pawhaven/petadoption-backend/internal/pets"
	"github.com/pawhaven/petadoption-backend/pkg/config"
	"github.com/pawhaven/petadoption-backend/pkg/db"
	"github.com/pawhaven/petadoption-backend/pkg/logger"
	"github.com/pawhaven/petadoption-backend/pkg/metrics"
	"github.com/pawhaven/petadoption-backend/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := cfg.Images.EnsureDirs(); err != nil {
		logg.Error(context.Background(), "failed to prepare image roots", err)
		os.Exit(1)
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	workflowMetrics := metrics.NewWorkflowMetrics(registry)

	relocator := assets.NewRelocator(cfg.Images)

	petRepo := petsvc.NewRepository(dbClient.DB())
	petService, err := petsvc.NewService(petRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create pet service", err)
		os.Exit(1)
	}

	pendingPetService, err := pendingpetsvc.NewService(
		pendingpetsvc.NewRepository(dbClient.DB()),
		petRepo,
		dbClient,
		relocator,
		cfg.Shelter.DefaultShelterID,
		workflowMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create pending pet service", err)
		os.Exit(1)
	}

	adoptionService, err := adoptionsvc.NewService(
		adoptionsvc.NewRepository(dbClient.DB()),
		petRepo,
		dbClient,
		workflowMetrics,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create adoption service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, registry, petService, pendingPetService, adoptionService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
