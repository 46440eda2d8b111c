package model

import (
	"time"
)

// Grade holds the single grade row for a (student, course) pair. Re-grading
// deletes all prior rows for the pair and inserts a fresh one; TotalScore
// always mirrors FinalScore (the historical midterm/assignment components
// were removed).
type Grade struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	EnrollmentID uint      `gorm:"uniqueIndex;not null" json:"enrollment_id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	CourseID     uint      `gorm:"not null;index" json:"course_id"`
	FinalScore   *float64  `json:"final_score"` // 0-100
	TotalScore   *float64  `json:"total_score"` // 0-100, equals FinalScore
	LetterGrade  *string   `gorm:"type:varchar(2)" json:"letter_grade"`
	Comment      *string   `gorm:"type:text" json:"comment"`
	FacultyID    *uint     `gorm:"index" json:"faculty_id"` // faculty who graded, nulled if they are deleted
}
