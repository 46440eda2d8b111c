package repository

import (
	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories. Services depend on this
// struct and the interfaces it carries, never on *gorm.DB directly.
type Repository struct {
	Users         UserRepository
	Students      StudentRepository
	Faculties     FacultyRepository
	Courses       CourseRepository
	Enrollments   EnrollmentRepository
	Grades        GradeRepository
	ActivityLogs  ActivityLogRepository
	Notifications NotificationRepository
	AdminProfiles AdminProfileRepository

	db *gorm.DB
}

// NewRepository creates the GORM-backed repository aggregate.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Users:         NewUserRepo(db),
		Students:      NewStudentRepo(db),
		Faculties:     NewFacultyRepo(db),
		Courses:       NewCourseRepo(db),
		Enrollments:   NewEnrollmentRepo(db),
		Grades:        NewGradeRepo(db),
		ActivityLogs:  NewActivityLogRepo(db),
		Notifications: NewNotificationRepo(db),
		AdminProfiles: NewAdminProfileRepo(db),
		db:            db,
	}
}

// Transaction runs fn against a repository aggregate bound to one database
// transaction. Multi-step writes (uniqueness check then insert, delete old
// grades then insert the replacement, cascading deletes) go through here so
// the store's isolation guarantees cover the whole sequence. Aggregates built
// without a database (tests) run fn directly.
func (r *Repository) Transaction(fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
