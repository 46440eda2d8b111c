package model

import (
	"time"
)

// Student represents a student profile. Each student has a paired User account
// (role Student, reference id = this row's ID) created and deleted with it.
type Student struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	StudentID string    `gorm:"uniqueIndex;not null;type:varchar(50)" json:"student_id"` // e.g. "BH00123"
	FullName  string    `gorm:"not null" json:"full_name"`
	Email     string    `gorm:"not null" json:"email"`
	Program   string    `gorm:"type:varchar(100)" json:"program"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`

	// Relationships
	Enrollments []Enrollment `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"enrollments,omitempty"`
}
