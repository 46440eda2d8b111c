package model

import (
	"time"
)

// Notification types.
const (
	NotificationGradeAdded      = "GradeAdded"
	NotificationFacultyAssigned = "FacultyAssigned"
)

// Notification is an in-app notice delivered to a role or a specific user of
// that role (RecipientID nil means everyone with the role).
type Notification struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	NotificationType string    `gorm:"type:varchar(50);not null" json:"notification_type"`
	Title            string    `gorm:"not null" json:"title"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	RecipientRole    string    `gorm:"type:varchar(20);not null;index:idx_notifications_recipient" json:"recipient_role"`
	RecipientID      *uint     `gorm:"index:idx_notifications_recipient" json:"recipient_id"`
	RelatedStudentID *uint     `json:"related_student_id"`
	RelatedCourseID  *uint     `json:"related_course_id"`
	RelatedGradeID   *uint     `json:"related_grade_id"`
	IsRead           bool      `gorm:"default:false" json:"is_read"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}
