package services

import (
	"context"
	"strings"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
	"github.com/opencampus/sims-api/utils/auth"
)

// StudentService owns the Student write path, including the paired User
// account that every student logs in with.
type StudentService struct {
	repo *repository.Repository
}

// NewStudentService creates a new student service.
func NewStudentService(repo *repository.Repository) *StudentService {
	return &StudentService{repo: repo}
}

// CreateStudentRequest carries the admin form for a new student.
type CreateStudentRequest struct {
	StudentID string  `json:"student_id" validate:"required,max=50"`
	FullName  string  `json:"full_name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Program   string  `json:"program" validate:"max=100"`
	Status    string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Username  string  `json:"username" validate:"omitempty,max=50"`
	Password  string  `json:"password" validate:"required,min=6"`
	Phone     string  `json:"phone" validate:"omitempty,max=20"`
	Address   string  `json:"address"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

// UpdateStudentRequest carries the edit form. Password is applied only when
// non-empty.
type UpdateStudentRequest struct {
	FullName string  `json:"full_name" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Program  string  `json:"program" validate:"max=100"`
	Status   string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Username string  `json:"username" validate:"omitempty,max=50"`
	Password string  `json:"password" validate:"omitempty,min=6"`
	Phone    string  `json:"phone" validate:"omitempty,max=20"`
	Address  string  `json:"address"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

// GetByID returns the student or nil when no row exists.
func (s *StudentService) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	return s.repo.Students.GetByID(ctx, id)
}

// List returns all students, optionally filtered by a case-insensitive
// search over id, name, email and program.
func (s *StudentService) List(ctx context.Context, search string) ([]model.Student, error) {
	students, err := s.repo.Students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return students, nil
	}
	needle := strings.ToLower(search)
	filtered := make([]model.Student, 0, len(students))
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.StudentID), needle) ||
			strings.Contains(strings.ToLower(st.FullName), needle) ||
			strings.Contains(strings.ToLower(st.Email), needle) ||
			strings.Contains(strings.ToLower(st.Program), needle) {
			filtered = append(filtered, st)
		}
	}
	return filtered, nil
}

// Create validates uniqueness (student id first, then email), inserts the
// student and its paired User account in one transaction.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*model.Student, error) {
	if req.Status == "" {
		req.Status = model.StatusActive
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, Conflict("Password is required.")
	}
	username := req.Username
	if username == "" {
		username = req.StudentID
	}

	var created *model.Student
	err = s.repo.Transaction(func(tx *repository.Repository) error {
		existing, err := tx.Students.GetByStudentID(ctx, req.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return Conflict("Student ID already exists.")
		}
		byEmail, err := tx.Students.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if byEmail != nil {
			return Conflict("Email already exists.")
		}

		student := &model.Student{
			StudentID: req.StudentID,
			FullName:  req.FullName,
			Email:     req.Email,
			Program:   req.Program,
			Status:    req.Status,
		}
		if err := tx.Students.Create(ctx, student); err != nil {
			return err
		}

		user := &model.User{
			Username:     username,
			PasswordHash: hash,
			FullName:     req.FullName,
			Email:        req.Email,
			Role:         model.RoleStudent,
			ReferenceID:  &student.ID,
			Status:       req.Status,
			Phone:        req.Phone,
			Address:      req.Address,
			Gender:       req.Gender,
		}
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		created = student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the edit form, re-checking email uniqueness against every
// other student and syncing the paired User account. Returns nil when the
// student does not exist.
func (s *StudentService) Update(ctx context.Context, id uint, req UpdateStudentRequest) (*model.Student, error) {
	var updated *model.Student
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		student, err := tx.Students.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if student == nil {
			return nil
		}
		byEmail, err := tx.Students.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if byEmail != nil && byEmail.ID != id {
			return Conflict("Email already exists.")
		}

		student.FullName = req.FullName
		student.Email = req.Email
		student.Program = req.Program
		if req.Status != "" {
			student.Status = req.Status
		}
		if err := tx.Students.Update(ctx, student); err != nil {
			return err
		}

		user, err := tx.Users.GetByReference(ctx, student.ID, model.RoleStudent)
		if err != nil {
			return err
		}
		if user != nil {
			user.FullName = student.FullName
			user.Email = student.Email
			user.Status = student.Status
			if req.Username != "" {
				user.Username = req.Username
			}
			if req.Phone != "" {
				user.Phone = req.Phone
			}
			if req.Address != "" {
				user.Address = req.Address
			}
			if req.Gender != nil {
				user.Gender = req.Gender
			}
			if req.Password != "" {
				hash, err := auth.HashPassword(req.Password)
				if err != nil {
					return err
				}
				user.PasswordHash = hash
			}
			if err := tx.Users.Update(ctx, user); err != nil {
				return err
			}
		}
		updated = student
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the student together with its enrollments, their grade
// rows and the paired User account. Returns false when no student exists.
func (s *StudentService) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		student, err := tx.Students.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if student == nil {
			return nil
		}
		found = true

		enrollments, err := tx.Enrollments.GetByStudentID(ctx, student.ID)
		if err != nil {
			return err
		}
		for _, enrollment := range enrollments {
			grade, err := tx.Grades.GetByEnrollmentID(ctx, enrollment.ID)
			if err != nil {
				return err
			}
			if grade != nil {
				if err := tx.Grades.Delete(ctx, grade.ID); err != nil {
					return err
				}
			}
			if err := tx.Enrollments.Delete(ctx, enrollment.ID); err != nil {
				return err
			}
		}

		user, err := tx.Users.GetByReference(ctx, student.ID, model.RoleStudent)
		if err != nil {
			return err
		}
		if user != nil {
			if err := tx.Users.Delete(ctx, user.ID); err != nil {
				return err
			}
		}
		return tx.Students.Delete(ctx, student.ID)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
