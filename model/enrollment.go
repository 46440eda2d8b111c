package model

import (
	"time"
)

// Enrollment status values. Only these three are accepted on edit.
const (
	EnrollmentEnrolled  = "Enrolled"
	EnrollmentCompleted = "Completed"
	EnrollmentDropped   = "Dropped"
)

// Enrollment pairs a student with a course, optionally assigned to a grading
// faculty. At most one enrollment exists per (student, course).
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_enrollments_student_course" json:"student_id"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_enrollments_student_course" json:"course_id"`
	FacultyID *uint     `gorm:"index" json:"faculty_id"` // nil until a faculty is assigned
	Status    string    `gorm:"type:varchar(20);not null;default:'Enrolled'" json:"status"`

	// Relationships
	Student Student  `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course  Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Faculty *Faculty `gorm:"foreignKey:FacultyID" json:"faculty,omitempty"`
}

// ValidEnrollmentStatus reports whether s is one of the three accepted values.
func ValidEnrollmentStatus(s string) bool {
	return s == EnrollmentEnrolled || s == EnrollmentCompleted || s == EnrollmentDropped
}
