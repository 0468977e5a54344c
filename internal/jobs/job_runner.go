package jobs

import (
	"database/sql"

	"gadgetlend-backend/internal/config"
	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/notify"
	"gadgetlend-backend/internal/repository"
	"gadgetlend-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	store  repository.Store
	email  service.EmailService
	hub    *notify.Hub
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store repository.Store, email service.EmailService, hub *notify.Hub, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		email:  email,
		hub:    hub,
		config: cfg,
	}
}

// Config returns the application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.DetectOverdues()
	jr.SendOverdueNotices()
}
