package services

import (
	"context"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// ActivityLogService exposes the audit trail. Read only; entries are
// written exclusively by the grade engine.
type ActivityLogService struct {
	repo *repository.Repository
}

// NewActivityLogService creates a new activity log service.
func NewActivityLogService(repo *repository.Repository) *ActivityLogService {
	return &ActivityLogService{repo: repo}
}

// List returns log entries matching the filter, newest first.
func (s *ActivityLogService) List(ctx context.Context, filter repository.ActivityLogFilter) ([]model.ActivityLog, error) {
	return s.repo.ActivityLogs.Find(ctx, filter)
}

// ListForStudent returns the audit entries touching one student.
func (s *ActivityLogService) ListForStudent(ctx context.Context, studentID uint) ([]model.ActivityLog, error) {
	return s.repo.ActivityLogs.GetByStudentID(ctx, studentID)
}
