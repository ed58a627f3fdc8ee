package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aeron-recovery-service/internal/domain/repository"
	"aeron-recovery-service/internal/infrastructure/config"
	"aeron-recovery-service/internal/infrastructure/persistence"
	"aeron-recovery-service/internal/infrastructure/router"
	"aeron-recovery-service/internal/interface/httpapi"
	repo "aeron-recovery-service/internal/interface/repository"
	"aeron-recovery-service/internal/usecase"
	"aeron-recovery-service/pkg/logger"
	"aeron-recovery-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting AERON recovery service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	// Optional PostgreSQL: durable flights and airport directory
	var flightRepo repository.FlightRecordRepository
	var airportRepo repository.AirportRepository
	if cfg.PostgresEnabled() {
		log.Info("Connecting to PostgreSQL")
		gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI, &repo.Flights{}, &repo.Airports{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		flightRepo = repo.NewGormFlightRecordRepository(gormDB)
		airportRepo = repo.NewGormAirportRepository(gormDB)
	}

	// Optional MongoDB: recovery plan log
	var planRepo repository.RecoveryPlanRepository
	var mongoClient *mongo.Client
	if cfg.MongoEnabled() {
		log.Info("Connecting to MongoDB")
		var db *mongo.Database
		mongoClient, db, err = persistence.NewMongoDatabase(ctx, persistence.MongoOptions{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDB,
			Username: cfg.MongoUser,
			Password: cfg.MongoPassword,
			AppName:  "aeron-recovery-service",
		})
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		planRepo, err = repo.NewMongoRecoveryPlanRepository(ctx, db)
		if err != nil {
			log.Fatal("Failed to prepare recovery plan collection", "error", err)
		}
	}

	// Core
	clock := usecase.RealClock{}
	store := usecase.NewRecordStore(clock)
	engine := usecase.NewQueryEngine(router.NewDefaultSortRouter(log))
	generator := usecase.NewRecoveryOptionGenerator(clock, usecase.UUIDGenerator{})
	flightService := usecase.NewFlightService(
		store,
		engine,
		usecase.NewStatisticsAggregator(),
		generator,
		flightRepo,
		airportRepo,
		planRepo,
		m,
		log,
	)

	restored, err := flightService.Restore(ctx)
	if err != nil {
		log.Fatal("Failed to restore flights", "error", err)
	}
	if cfg.SeedSampleData && restored == 0 {
		if err := flightService.SeedSampleData(ctx, clock.Now()); err != nil {
			log.Fatal("Failed to seed sample flights", "error", err)
		}
		log.Info("Seeded sample flights", "count", store.Len())
	}

	// Set up HTTP server
	r := httpapi.NewRouter(flightService, clock, m, log)
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	if err := persistence.CloseMongo(mongoClient, 5*time.Second); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("AERON recovery service stopped")
}
