package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "gadgetlend-backend/internal/api/http"
	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/jobs"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository/postgres"
	"gadgetlend-backend/internal/security"
	"gadgetlend-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GadgetLend Admin Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenExpiry)

	// Change notification hub shared by services and the long-poll endpoint
	hub := notify.NewHub()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid)
	authSvc := service.NewAuthService(store, tokenManager)
	studentSvc := service.NewStudentService(store, hub)
	gadgetSvc := service.NewGadgetService(store, hub)
	rentalSvc := service.NewRentalService(store, cfg.Fines, hub)
	extensionSvc := service.NewExtensionService(store, cfg.Fines, hub)
	assessmentSvc := service.NewAssessmentService(store, hub)
	transactionSvc := service.NewTransactionService(store, hub)

	// Job runner backs the on-demand overdue scan endpoint
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, hub, cfg)

	server := httpapi.NewServer(cfg, &httpapi.Services{
		Auth:        authSvc,
		Student:     studentSvc,
		Gadget:      gadgetSvc,
		Rental:      rentalSvc,
		Extension:   extensionSvc,
		Assessment:  assessmentSvc,
		Transaction: transactionSvc,
	}, tokenManager, hub, jobRunner)

	// Start server in background so signals can drive shutdown
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Error("Server stopped unexpectedly", "error", err)
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		logger.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
