package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/opencampus/sims-api/model"
)

// NotificationRepository is the data access boundary for notifications.
type NotificationRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Notification, error)
	GetForRecipient(ctx context.Context, role string, recipientID uint, unreadOnly bool) ([]model.Notification, error)
	Create(ctx context.Context, notification *model.Notification) error
	MarkRead(ctx context.Context, id uint) error
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo creates the GORM-backed notification repository.
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) GetByID(ctx context.Context, id uint) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.WithContext(ctx).First(&notification, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// GetForRecipient returns notices addressed to this user plus role-wide ones
// (recipient_id is NULL).
func (r *notificationRepo) GetForRecipient(ctx context.Context, role string, recipientID uint, unreadOnly bool) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("recipient_role = ? AND (recipient_id IS NULL OR recipient_id = ?)", role, recipientID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []model.Notification
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).Update("is_read", true).Error
}

func (r *notificationRepo) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&model.Notification{})
	return result.RowsAffected, result.Error
}
