package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/jobs"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository/postgres"
	"gadgetlend-backend/internal/scheduler"
	"gadgetlend-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'detect-overdues', 'send-overdue-notices', 'all-nightly')")
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
	logger.Info("Starting GadgetLend Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	emailService := service.NewEmailService(cfg.SendGrid)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, emailService, notify.NewHub(), cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	cronScheduler.Stop()
}

// runJobOnce executes a single named job
func runJobOnce(jr *jobs.JobRunner, jobName string) {
	switch jobName {
	case "detect-overdues":
		jr.DetectOverdues()
	case "send-overdue-notices":
		jr.SendOverdueNotices()
	case "all-nightly":
		jr.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		log.Fatalf("Unknown job: %s (valid: detect-overdues, send-overdue-notices, all-nightly)", jobName)
	}
}
