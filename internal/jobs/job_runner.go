package jobs

import (
	"banksampah-backend/internal/config"
	"banksampah-backend/internal/logger"
	"banksampah-backend/internal/repository"
	"banksampah-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store     repository.Store
	reportSvc service.ReportService
	emailSvc  service.EmailService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store repository.Store, reportSvc service.ReportService, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:     store,
		reportSvc: reportSvc,
		emailSvc:  emailSvc,
		config:    cfg,
	}
}

// Config exposes the configuration for scheduler wiring
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
	jr.VerifyLedgerConsistency()
	jr.RecountActiveAccounts()
}

// RunAllMonthlyJobs runs all monthly jobs (for manual execution)
func (jr *JobRunner) RunAllMonthlyJobs() {
	jr.SendMonthlyStatements()
}
