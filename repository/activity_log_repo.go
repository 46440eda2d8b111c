package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
)

// ActivityLogFilter narrows activity log reads. Nil/empty fields are ignored.
type ActivityLogFilter struct {
	StudentID    *uint
	CourseID     *uint
	FacultyID    *uint
	ActivityType string
}

// ActivityLogRepository appends and reads the audit trail. There is no update
// or delete: the log is append-only.
type ActivityLogRepository interface {
	Add(ctx context.Context, entry *model.ActivityLog) error
	Find(ctx context.Context, filter ActivityLogFilter) ([]model.ActivityLog, error)
	GetByStudentID(ctx context.Context, studentID uint) ([]model.ActivityLog, error)
}

type activityLogRepo struct {
	db *gorm.DB
}

// NewActivityLogRepo creates the GORM-backed activity log repository.
func NewActivityLogRepo(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Add(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepo) Find(ctx context.Context, filter ActivityLogFilter) ([]model.ActivityLog, error) {
	query := r.db.WithContext(ctx).Model(&model.ActivityLog{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}
	if filter.FacultyID != nil {
		query = query.Where("faculty_id = ?", *filter.FacultyID)
	}
	if filter.ActivityType != "" {
		query = query.Where("activity_type = ?", filter.ActivityType)
	}

	var logs []model.ActivityLog
	err := query.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

func (r *activityLogRepo) GetByStudentID(ctx context.Context, studentID uint) ([]model.ActivityLog, error) {
	var logs []model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&logs).Error
	return logs, err
}
