package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-booking-backend/config"
	"travel-booking-backend/internal/api"
	"travel-booking-backend/internal/db"
	"travel-booking-backend/internal/inventory"
	"travel-booking-backend/internal/journal"
	"travel-booking-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "booking-backend ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Each service gets its own database, store, inventory, journal pool
	// and HTTP listener; the instances share nothing.
	var servers []*http.Server
	for _, svc := range cfg.Services {
		gormDB, err := db.Init(&svc.Database)
		if err != nil {
			logger.Fatalf("failed to initialize %s database: %v", svc.Name, err)
		}

		svcStore := store.NewGormStore(gormDB)

		inv := inventory.New(inventory.Config{
			Name:           svc.Name,
			Prefix:         svc.Prefix,
			DigitsFirst:    svc.DigitsFirst,
			Seats:          svc.Seats,
			Days:           cfg.Calendar.Days,
			ExcludeWeekday: cfg.Calendar.ExcludedWeekday,
		}, svcStore)

		pool := journal.NewWorkerPool(cfg.Journal.Workers, cfg.Journal.QueueSize, svcStore)
		pool.Start(ctx)

		router := api.NewRouter(inv, pool, &cfg.Server)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", svc.Port),
			Handler: router,
		}
		servers = append(servers, server)

		go func(name string, srv *http.Server, port int) {
			logger.Printf("%s service starting on port %d", name, port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatalf("%s service ListenAndServe: %v", name, err)
			}
		}(svc.Name, server, svc.Port)
	}

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second,
	)
	defer shutdownCancel()

	for _, server := range servers {
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Fatalf("HTTP server Shutdown: %v", err)
		}
	}

	logger.Println("All services gracefully stopped")
}
