package model

import (
	"time"
)

// Course represents a course offering (e.g. "CS101 - Intro to Programming").
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CourseCode  string    `gorm:"uniqueIndex;not null;type:varchar(50)" json:"course_code"`
	CourseName  string    `gorm:"not null" json:"course_name"`
	Description string    `gorm:"type:text" json:"description"`
	Credits     int       `gorm:"not null" json:"credits"` // 1-10
	Status      string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}
