package services

import (
	"context"
	"strings"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
	"github.com/opencampus/sims-api/utils/auth"
)

// FacultyService owns the Faculty write path and its paired User account.
// Deleting a faculty preserves enrollments and grades; only their FacultyID
// references are cleared.
type FacultyService struct {
	repo *repository.Repository
}

// NewFacultyService creates a new faculty service.
func NewFacultyService(repo *repository.Repository) *FacultyService {
	return &FacultyService{repo: repo}
}

// CreateFacultyRequest carries the admin form for a new faculty member.
type CreateFacultyRequest struct {
	FacultyID  string  `json:"faculty_id" validate:"required,max=50"`
	FullName   string  `json:"full_name" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department" validate:"max=100"`
	Status     string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Username   string  `json:"username" validate:"omitempty,max=50"`
	Password   string  `json:"password" validate:"required,min=6"`
	Phone      string  `json:"phone" validate:"omitempty,max=20"`
	Address    string  `json:"address"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

// UpdateFacultyRequest carries the edit form. Password is applied only when
// non-empty.
type UpdateFacultyRequest struct {
	FullName   string  `json:"full_name" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Department string  `json:"department" validate:"max=100"`
	Status     string  `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Username   string  `json:"username" validate:"omitempty,max=50"`
	Password   string  `json:"password" validate:"omitempty,min=6"`
	Phone      string  `json:"phone" validate:"omitempty,max=20"`
	Address    string  `json:"address"`
	Gender     *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

// DeletionImpact reports how many rows a faculty delete would touch. Read
// only, used by the confirmation dialog.
type DeletionImpact struct {
	Enrollments int64 `json:"enrollments"`
	Grades      int64 `json:"grades"`
}

// GetByID returns the faculty member or nil when no row exists.
func (s *FacultyService) GetByID(ctx context.Context, id uint) (*model.Faculty, error) {
	return s.repo.Faculties.GetByID(ctx, id)
}

// List returns all faculty, optionally filtered by a case-insensitive search
// over id, name, email and department.
func (s *FacultyService) List(ctx context.Context, search string) ([]model.Faculty, error) {
	faculties, err := s.repo.Faculties.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return faculties, nil
	}
	needle := strings.ToLower(search)
	filtered := make([]model.Faculty, 0, len(faculties))
	for _, f := range faculties {
		if strings.Contains(strings.ToLower(f.FacultyID), needle) ||
			strings.Contains(strings.ToLower(f.FullName), needle) ||
			strings.Contains(strings.ToLower(f.Email), needle) ||
			strings.Contains(strings.ToLower(f.Department), needle) {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

// Create validates uniqueness (faculty id first, then email), then inserts
// the faculty and its paired User account in one transaction.
func (s *FacultyService) Create(ctx context.Context, req CreateFacultyRequest) (*model.Faculty, error) {
	if req.Status == "" {
		req.Status = model.StatusActive
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, Conflict("Password is required.")
	}
	username := req.Username
	if username == "" {
		username = req.FacultyID
	}

	var created *model.Faculty
	err = s.repo.Transaction(func(tx *repository.Repository) error {
		existing, err := tx.Faculties.GetByFacultyID(ctx, req.FacultyID)
		if err != nil {
			return err
		}
		if existing != nil {
			return Conflict("Faculty ID already exists.")
		}
		byEmail, err := tx.Faculties.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if byEmail != nil {
			return Conflict("Email already exists.")
		}

		faculty := &model.Faculty{
			FacultyID:  req.FacultyID,
			FullName:   req.FullName,
			Email:      req.Email,
			Department: req.Department,
			Status:     req.Status,
		}
		if err := tx.Faculties.Create(ctx, faculty); err != nil {
			return err
		}

		user := &model.User{
			Username:     username,
			PasswordHash: hash,
			FullName:     req.FullName,
			Email:        req.Email,
			Role:         model.RoleFaculty,
			ReferenceID:  &faculty.ID,
			Status:       req.Status,
			Phone:        req.Phone,
			Address:      req.Address,
			Gender:       req.Gender,
		}
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		created = faculty
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the edit form, re-checking email uniqueness against every
// other faculty and syncing the paired User account. Returns nil when the
// faculty does not exist.
func (s *FacultyService) Update(ctx context.Context, id uint, req UpdateFacultyRequest) (*model.Faculty, error) {
	var updated *model.Faculty
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		faculty, err := tx.Faculties.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if faculty == nil {
			return nil
		}
		byEmail, err := tx.Faculties.GetByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if byEmail != nil && byEmail.ID != id {
			return Conflict("Email already exists.")
		}

		faculty.FullName = req.FullName
		faculty.Email = req.Email
		faculty.Department = req.Department
		if req.Status != "" {
			faculty.Status = req.Status
		}
		if err := tx.Faculties.Update(ctx, faculty); err != nil {
			return err
		}

		user, err := tx.Users.GetByReference(ctx, faculty.ID, model.RoleFaculty)
		if err != nil {
			return err
		}
		if user != nil {
			user.FullName = faculty.FullName
			user.Email = faculty.Email
			user.Status = faculty.Status
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
		updated = faculty
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetDeletionImpact counts the enrollments and grades that would lose their
// faculty reference if this faculty were deleted. No mutation.
func (s *FacultyService) GetDeletionImpact(ctx context.Context, id uint) (*DeletionImpact, error) {
	faculty, err := s.repo.Faculties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, nil
	}
	enrollments, err := s.repo.Enrollments.CountByFacultyID(ctx, id)
	if err != nil {
		return nil, err
	}
	grades, err := s.repo.Grades.CountByFacultyID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DeletionImpact{Enrollments: enrollments, Grades: grades}, nil
}

// Delete clears FacultyID on every referencing grade, then every referencing
// enrollment, removes the paired User account and finally the faculty row.
// Enrollments and grades themselves are preserved. Returns false when no
// faculty exists.
func (s *FacultyService) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		faculty, err := tx.Faculties.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if faculty == nil {
			return nil
		}
		found = true

		grades, err := tx.Grades.GetByFacultyID(ctx, faculty.ID)
		if err != nil {
			return err
		}
		for i := range grades {
			grades[i].FacultyID = nil
			if err := tx.Grades.Update(ctx, &grades[i]); err != nil {
				return err
			}
		}

		enrollments, err := tx.Enrollments.GetByFacultyID(ctx, faculty.ID)
		if err != nil {
			return err
		}
		for i := range enrollments {
			enrollments[i].FacultyID = nil
			if err := tx.Enrollments.Update(ctx, &enrollments[i]); err != nil {
				return err
			}
		}

		user, err := tx.Users.GetByReference(ctx, faculty.ID, model.RoleFaculty)
		if err != nil {
			return err
		}
		if user != nil {
			if err := tx.Users.Delete(ctx, user.ID); err != nil {
				return err
			}
		}
		return tx.Faculties.Delete(ctx, faculty.ID)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
