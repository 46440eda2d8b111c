package services

import (
	"context"
	"strings"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// CourseService owns the Course write path. Courses have no paired User;
// deleting one cascades through its enrollments and their grades.
type CourseService struct {
	repo *repository.Repository
}

// NewCourseService creates a new course service.
func NewCourseService(repo *repository.Repository) *CourseService {
	return &CourseService{repo: repo}
}

// CourseRequest carries both the create and edit forms.
type CourseRequest struct {
	CourseCode  string `json:"course_code" validate:"required,max=50"`
	CourseName  string `json:"course_name" validate:"required,max=100"`
	Description string `json:"description"`
	Credits     int    `json:"credits" validate:"required,min=1,max=10"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// GetByID returns the course or nil when no row exists.
func (s *CourseService) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	return s.repo.Courses.GetByID(ctx, id)
}

// List returns all courses, optionally filtered by a case-insensitive search
// over code and name.
func (s *CourseService) List(ctx context.Context, search string) ([]model.Course, error) {
	courses, err := s.repo.Courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return courses, nil
	}
	needle := strings.ToLower(search)
	filtered := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.CourseCode), needle) ||
			strings.Contains(strings.ToLower(c.CourseName), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Create validates course code uniqueness and inserts the course.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*model.Course, error) {
	if req.Status == "" {
		req.Status = model.StatusActive
	}
	var created *model.Course
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		existing, err := tx.Courses.GetByCourseCode(ctx, req.CourseCode)
		if err != nil {
			return err
		}
		if existing != nil {
			return Conflict("Course Code already exists.")
		}
		course := &model.Course{
			CourseCode:  req.CourseCode,
			CourseName:  req.CourseName,
			Description: req.Description,
			Credits:     req.Credits,
			Status:      req.Status,
		}
		if err := tx.Courses.Create(ctx, course); err != nil {
			return err
		}
		created = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the edit form, re-checking course code uniqueness against
// every other course. Returns nil when the course does not exist.
func (s *CourseService) Update(ctx context.Context, id uint, req CourseRequest) (*model.Course, error) {
	var updated *model.Course
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		course, err := tx.Courses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if course == nil {
			return nil
		}
		byCode, err := tx.Courses.GetByCourseCode(ctx, req.CourseCode)
		if err != nil {
			return err
		}
		if byCode != nil && byCode.ID != id {
			return Conflict("Course Code already exists.")
		}

		course.CourseCode = req.CourseCode
		course.CourseName = req.CourseName
		course.Description = req.Description
		course.Credits = req.Credits
		if req.Status != "" {
			course.Status = req.Status
		}
		if err := tx.Courses.Update(ctx, course); err != nil {
			return err
		}
		updated = course
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetDeletionImpact counts the enrollments and grades a course delete would
// remove. Read only; returns nil when the course does not exist.
func (s *CourseService) GetDeletionImpact(ctx context.Context, id uint) (*DeletionImpact, error) {
	course, err := s.repo.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}
	enrollments, err := s.repo.Enrollments.GetByCourseID(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	impact := &DeletionImpact{Enrollments: int64(len(enrollments))}
	for _, enrollment := range enrollments {
		grade, err := s.repo.Grades.GetByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			return nil, err
		}
		if grade != nil {
			impact.Grades++
		}
	}
	return impact, nil
}

// Delete removes every grade row tied to the course's enrollments, then the
// enrollments, then the course. Returns false when no course exists.
func (s *CourseService) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		course, err := tx.Courses.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if course == nil {
			return nil
		}
		found = true

		enrollments, err := tx.Enrollments.GetByCourseID(ctx, course.ID)
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
		return tx.Courses.Delete(ctx, course.ID)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
