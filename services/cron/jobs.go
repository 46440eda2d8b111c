package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// notificationRetention is how long read notifications are kept before the
// nightly cleanup removes them.
const notificationRetention = 30 * 24 * time.Hour

// CleanupReadNotifications removes read notifications older than the
// retention window. Runs daily at 2 AM.
func (m *CronManager) CleanupReadNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	jobName := "cleanup_read_notifications"

	deleted, err := m.notifications.CleanupRead(ctx, notificationRetention)
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to delete notifications: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Deleted %d read notifications", deleted))
}

// DailyActivitySummary counts the previous day's grading activity and logs
// the totals. Runs daily at 6 AM.
func (m *CronManager) DailyActivitySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	jobName := "daily_activity_summary"

	entries, err := m.repo.ActivityLogs.Find(ctx, repository.ActivityLogFilter{})
	if err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to query activity log: %w", err))
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	created := 0
	updated := 0
	for _, entry := range entries {
		if entry.CreatedAt.Before(since) {
			continue
		}
		switch entry.ActivityType {
		case model.ActivityGradeCreated:
			created++
		case model.ActivityGradeUpdated:
			updated++
		}
	}

	m.logJobComplete(jobName, fmt.Sprintf("Last 24h: %d grades created, %d grades updated", created, updated))
}
