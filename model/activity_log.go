package model

import (
	"time"

	"gorm.io/datatypes"
)

// Activity types written by the grade engine.
const (
	ActivityGradeCreated = "GradeCreated"
	ActivityGradeUpdated = "GradeUpdated"
)

// ActivityLog is the append-only audit trail for grade actions. Rows are
// never updated or deleted.
type ActivityLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ActivityType string         `gorm:"type:varchar(50);not null;index" json:"activity_type"`
	GradeID      *uint          `json:"grade_id"`
	StudentID    *uint          `gorm:"index" json:"student_id"`
	CourseID     *uint          `gorm:"index" json:"course_id"`
	FacultyID    *uint          `gorm:"index" json:"faculty_id"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	OldValue     datatypes.JSON `json:"old_value,omitempty"` // snapshot before the change, nil on create
	NewValue     datatypes.JSON `json:"new_value,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	PerformedBy  string         `gorm:"not null" json:"performed_by"`
}

// GradeSnapshot is the JSON shape stored in OldValue/NewValue.
type GradeSnapshot struct {
	FinalScore  *float64 `json:"finalScore"`
	TotalScore  *float64 `json:"totalScore"`
	LetterGrade *string  `json:"letterGrade"`
	Comment     *string  `json:"comment"`
}
