package model

import (
	"time"
)

// Role values accepted by the system. Any other value is never authenticated.
const (
	RoleAdmin   = "Admin"
	RoleFaculty = "Faculty"
	RoleStudent = "Student"
)

// Account status values.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Gender values (nullable on User).
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// User represents a login account. Admin accounts stand alone; Student and
// Faculty accounts point at their profile row through ReferenceID.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	FullName     string    `gorm:"not null" json:"full_name"`
	Email        string    `gorm:"not null" json:"email"`
	Role         string    `gorm:"type:varchar(20);not null;index:idx_users_role_reference" json:"role"`
	ReferenceID  *uint     `gorm:"index:idx_users_role_reference" json:"reference_id"` // nil for Admin
	Status       string    `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	Gender       *string   `gorm:"type:varchar(10)" json:"gender,omitempty"`
}
