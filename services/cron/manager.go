package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/opencampus/sims-api/repository"
	"github.com/opencampus/sims-api/services"
)

// CronManager manages all scheduled cron jobs.
type CronManager struct {
	cron          *cron.Cron
	repo          *repository.Repository
	notifications *services.NotificationService
}

// NewCronManager creates a new cron manager.
func NewCronManager(repo *repository.Repository, notifications *services.NotificationService) *CronManager {
	// Cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:          c,
		repo:          repo,
		notifications: notifications,
	}
}

// Start registers all jobs and starts the scheduler.
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules.
func (m *CronManager) registerJobs() error {
	// 1. Daily at 2 AM: delete read notifications past retention
	_, err := m.cron.AddFunc("0 0 2 * * *", func() {
		m.logJobStart("cleanup_read_notifications")
		m.CleanupReadNotifications()
	})
	if err != nil {
		return err
	}

	// 2. Daily at 6 AM: summarize the previous day's grading activity
	_, err = m.cron.AddFunc("0 0 6 * * *", func() {
		m.logJobStart("daily_activity_summary")
		m.DailyActivitySummary()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))
}

func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)
}

func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)
}
