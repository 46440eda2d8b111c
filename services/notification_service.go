package services

import (
	"context"
	"time"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// NotificationService handles in-app notifications.
type NotificationService struct {
	repo *repository.Repository
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo *repository.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

// CreateNotificationRequest represents a request to create a notification.
// A nil RecipientID addresses everyone with RecipientRole.
type CreateNotificationRequest struct {
	Type             string
	Title            string
	Message          string
	RecipientRole    string
	RecipientID      *uint
	RelatedStudentID *uint
	RelatedCourseID  *uint
	RelatedGradeID   *uint
}

// Notify creates a notification.
func (s *NotificationService) Notify(ctx context.Context, req CreateNotificationRequest) error {
	notification := &model.Notification{
		NotificationType: req.Type,
		Title:            req.Title,
		Message:          req.Message,
		RecipientRole:    req.RecipientRole,
		RecipientID:      req.RecipientID,
		RelatedStudentID: req.RelatedStudentID,
		RelatedCourseID:  req.RelatedCourseID,
		RelatedGradeID:   req.RelatedGradeID,
		CreatedAt:        time.Now(),
	}
	return s.repo.Notifications.Create(ctx, notification)
}

// ListForRecipient returns the notifications visible to one user of a role:
// those addressed to them directly plus role-wide ones.
func (s *NotificationService) ListForRecipient(ctx context.Context, role string, recipientID uint, unreadOnly bool) ([]model.Notification, error) {
	return s.repo.Notifications.GetForRecipient(ctx, role, recipientID, unreadOnly)
}

// MarkRead marks one notification as read. Returns false when it does not
// exist or belongs to someone else.
func (s *NotificationService) MarkRead(ctx context.Context, id uint, role string, recipientID uint) (bool, error) {
	notification, err := s.repo.Notifications.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if notification == nil || notification.RecipientRole != role {
		return false, nil
	}
	if notification.RecipientID != nil && *notification.RecipientID != recipientID {
		return false, nil
	}
	if err := s.repo.Notifications.MarkRead(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CleanupRead deletes read notifications older than the retention window.
func (s *NotificationService) CleanupRead(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.Notifications.DeleteReadOlderThan(ctx, cutoff)
}
