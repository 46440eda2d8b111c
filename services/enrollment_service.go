package services

import (
	"context"
	"fmt"
	"log"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// NotAssigned is shown wherever an enrollment has no grading faculty.
const NotAssigned = "Not Assigned"

// EnrollmentService owns the Enrollment write path. At most one enrollment
// exists per (student, course); see Create for the faculty-patch exception.
type EnrollmentService struct {
	repo          *repository.Repository
	notifications *NotificationService
}

// NewEnrollmentService creates a new enrollment service. notifications may
// be nil; faculty-assignment notices are then skipped.
func NewEnrollmentService(repo *repository.Repository, notifications *NotificationService) *EnrollmentService {
	return &EnrollmentService{repo: repo, notifications: notifications}
}

// CreateEnrollmentRequest carries the admin enrollment form.
type CreateEnrollmentRequest struct {
	StudentID uint  `json:"student_id" validate:"required"`
	CourseID  uint  `json:"course_id" validate:"required"`
	FacultyID *uint `json:"faculty_id"`
}

// UpdateEnrollmentRequest carries the edit form. Faculty and status are
// always set together.
type UpdateEnrollmentRequest struct {
	FacultyID *uint  `json:"faculty_id"`
	Status    string `json:"status" validate:"required"`
}

// EnrollmentView is the enrollment list row with names resolved.
type EnrollmentView struct {
	ID          uint   `json:"id"`
	StudentID   uint   `json:"student_id"`
	StudentCode string `json:"student_code"`
	StudentName string `json:"student_name"`
	CourseID    uint   `json:"course_id"`
	CourseCode  string `json:"course_code"`
	CourseName  string `json:"course_name"`
	FacultyID   *uint  `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
	Status      string `json:"status"`
}

// GetByID returns the enrollment or nil when no row exists.
func (s *EnrollmentService) GetByID(ctx context.Context, id uint) (*model.Enrollment, error) {
	return s.repo.Enrollments.GetByID(ctx, id)
}

// List returns every enrollment with student, course and faculty names
// resolved for display.
func (s *EnrollmentService) List(ctx context.Context) ([]EnrollmentView, error) {
	enrollments, err := s.repo.Enrollments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, enrollments)
}

func (s *EnrollmentService) toViews(ctx context.Context, enrollments []model.Enrollment) ([]EnrollmentView, error) {
	students, err := s.repo.Students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.repo.Courses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	faculties, err := s.repo.Faculties.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	studentsByID := make(map[uint]model.Student, len(students))
	for _, st := range students {
		studentsByID[st.ID] = st
	}
	coursesByID := make(map[uint]model.Course, len(courses))
	for _, c := range courses {
		coursesByID[c.ID] = c
	}
	facultiesByID := make(map[uint]model.Faculty, len(faculties))
	for _, f := range faculties {
		facultiesByID[f.ID] = f
	}

	views := make([]EnrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		view := EnrollmentView{
			ID:          e.ID,
			StudentID:   e.StudentID,
			CourseID:    e.CourseID,
			FacultyID:   e.FacultyID,
			FacultyName: NotAssigned,
			Status:      e.Status,
		}
		if st, ok := studentsByID[e.StudentID]; ok {
			view.StudentCode = st.StudentID
			view.StudentName = st.FullName
		}
		if c, ok := coursesByID[e.CourseID]; ok {
			view.CourseCode = c.CourseCode
			view.CourseName = c.CourseName
		}
		if e.FacultyID != nil {
			if f, ok := facultiesByID[*e.FacultyID]; ok {
				view.FacultyName = f.FullName
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Create enrolls a student in a course. If an enrollment for the pair
// already exists it fails, with one exception: when the existing row has no
// faculty and the request supplies one, the faculty is patched onto the
// existing row instead.
func (s *EnrollmentService) Create(ctx context.Context, req CreateEnrollmentRequest) (*model.Enrollment, error) {
	var result *model.Enrollment
	facultyAssigned := false
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		student, err := tx.Students.GetByID(ctx, req.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return Conflict("Student not found.")
		}
		course, err := tx.Courses.GetByID(ctx, req.CourseID)
		if err != nil {
			return err
		}
		if course == nil {
			return Conflict("Course not found.")
		}
		if req.FacultyID != nil {
			faculty, err := tx.Faculties.GetByID(ctx, *req.FacultyID)
			if err != nil {
				return err
			}
			if faculty == nil {
				return Conflict("Faculty not found.")
			}
		}

		existing, err := tx.Enrollments.GetByStudentAndCourse(ctx, req.StudentID, req.CourseID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.FacultyID == nil && req.FacultyID != nil {
				existing.FacultyID = req.FacultyID
				if err := tx.Enrollments.Update(ctx, existing); err != nil {
					return err
				}
				result = existing
				facultyAssigned = true
				return nil
			}
			return Conflict("This student is already enrolled in this course.")
		}

		enrollment := &model.Enrollment{
			StudentID: req.StudentID,
			CourseID:  req.CourseID,
			FacultyID: req.FacultyID,
			Status:    model.EnrollmentEnrolled,
		}
		if err := tx.Enrollments.Create(ctx, enrollment); err != nil {
			return err
		}
		result = enrollment
		facultyAssigned = req.FacultyID != nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	if facultyAssigned && result.FacultyID != nil {
		s.notifyFacultyAssigned(ctx, result)
	}
	return result, nil
}

// Update sets the grading faculty and the status together. The status must
// be one of the three valid values.
func (s *EnrollmentService) Update(ctx context.Context, id uint, req UpdateEnrollmentRequest) (*model.Enrollment, error) {
	if !model.ValidEnrollmentStatus(req.Status) {
		return nil, Conflict("Invalid status. Status must be Enrolled, Completed, or Dropped.")
	}
	var updated *model.Enrollment
	newlyAssigned := false
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		enrollment, err := tx.Enrollments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return nil
		}
		if req.FacultyID != nil {
			faculty, err := tx.Faculties.GetByID(ctx, *req.FacultyID)
			if err != nil {
				return err
			}
			if faculty == nil {
				return Conflict("Faculty not found.")
			}
			newlyAssigned = enrollment.FacultyID == nil || *enrollment.FacultyID != *req.FacultyID
		}
		enrollment.FacultyID = req.FacultyID
		enrollment.Status = req.Status
		if err := tx.Enrollments.Update(ctx, enrollment); err != nil {
			return err
		}
		updated = enrollment
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated != nil && newlyAssigned {
		s.notifyFacultyAssigned(ctx, updated)
	}
	return updated, nil
}

// Delete removes the enrollment and its grade row if one exists. Returns
// false when no enrollment exists.
func (s *EnrollmentService) Delete(ctx context.Context, id uint) (bool, error) {
	found := false
	err := s.repo.Transaction(func(tx *repository.Repository) error {
		enrollment, err := tx.Enrollments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return nil
		}
		found = true
		grade, err := tx.Grades.GetByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			return err
		}
		if grade != nil {
			if err := tx.Grades.Delete(ctx, grade.ID); err != nil {
				return err
			}
		}
		return tx.Enrollments.Delete(ctx, enrollment.ID)
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// notifyFacultyAssigned posts a best-effort notice to the assigned faculty.
func (s *EnrollmentService) notifyFacultyAssigned(ctx context.Context, enrollment *model.Enrollment) {
	if s.notifications == nil || enrollment.FacultyID == nil {
		return
	}
	student, err := s.repo.Students.GetByID(ctx, enrollment.StudentID)
	if err != nil || student == nil {
		return
	}
	course, err := s.repo.Courses.GetByID(ctx, enrollment.CourseID)
	if err != nil || course == nil {
		return
	}
	err = s.notifications.Notify(ctx, CreateNotificationRequest{
		Type:             model.NotificationFacultyAssigned,
		Title:            "New grading assignment",
		Message:          fmt.Sprintf("You have been assigned to grade %s for %s in %s.", student.FullName, course.CourseCode, course.CourseName),
		RecipientRole:    model.RoleFaculty,
		RecipientID:      enrollment.FacultyID,
		RelatedStudentID: &enrollment.StudentID,
		RelatedCourseID:  &enrollment.CourseID,
	})
	if err != nil {
		log.Printf("Failed to create faculty assignment notification: %v", err)
	}
}
