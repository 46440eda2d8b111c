package model

import (
	"time"
)

// Faculty represents a faculty member profile with its paired User account.
// Deleting a faculty preserves enrollments and grades that reference it;
// their FacultyID columns are nulled out instead.
type Faculty struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	FacultyID  string    `gorm:"uniqueIndex;not null;type:varchar(50)" json:"faculty_id"`
	FullName   string    `gorm:"not null" json:"full_name"`
	Email      string    `gorm:"not null" json:"email"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
}
