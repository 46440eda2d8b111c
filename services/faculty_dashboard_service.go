package services

import (
	"context"

	"github.com/opencampus/sims-api/repository"
)

// FacultyDashboardService builds the faculty landing page: the courses a
// faculty member grades, with roster sizes and grading progress.
type FacultyDashboardService struct {
	repo *repository.Repository
}

// NewFacultyDashboardService creates a new faculty dashboard service.
func NewFacultyDashboardService(repo *repository.Repository) *FacultyDashboardService {
	return &FacultyDashboardService{repo: repo}
}

// FacultyCourseSummary is one course on the faculty dashboard.
type FacultyCourseSummary struct {
	CourseID     uint   `json:"course_id"`
	CourseCode   string `json:"course_code"`
	CourseName   string `json:"course_name"`
	Credits      int    `json:"credits"`
	StudentCount int    `json:"student_count"`
	GradedCount  int    `json:"graded_count"`
}

// FacultyDashboard is the faculty landing page payload.
type FacultyDashboard struct {
	FacultyID       uint                   `json:"faculty_id"`
	FacultyCode     string                 `json:"faculty_code"`
	FullName        string                 `json:"full_name"`
	Department      string                 `json:"department"`
	Courses         []FacultyCourseSummary `json:"courses"`
	TotalStudents   int                    `json:"total_students"`
	GradesSubmitted int64                  `json:"grades_submitted"`
}

// GetFacultyDashboard groups the faculty's assigned enrollments by course
// and reports how many of each roster are graded. Returns nil when the
// faculty does not exist.
func (s *FacultyDashboardService) GetFacultyDashboard(ctx context.Context, facultyID uint) (*FacultyDashboard, error) {
	faculty, err := s.repo.Faculties.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if faculty == nil {
		return nil, nil
	}

	enrollments, err := s.repo.Enrollments.GetByFacultyID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	byCourse := make(map[uint]*FacultyCourseSummary)
	order := make([]uint, 0)
	distinctStudents := make(map[uint]struct{})
	for _, enrollment := range enrollments {
		summary, ok := byCourse[enrollment.CourseID]
		if !ok {
			course, err := s.repo.Courses.GetByID(ctx, enrollment.CourseID)
			if err != nil {
				return nil, err
			}
			if course == nil {
				continue
			}
			summary = &FacultyCourseSummary{
				CourseID:   course.ID,
				CourseCode: course.CourseCode,
				CourseName: course.CourseName,
				Credits:    course.Credits,
			}
			byCourse[enrollment.CourseID] = summary
			order = append(order, enrollment.CourseID)
		}
		summary.StudentCount++
		distinctStudents[enrollment.StudentID] = struct{}{}

		grade, err := s.repo.Grades.GetByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			return nil, err
		}
		if grade != nil {
			summary.GradedCount++
		}
	}

	gradesSubmitted, err := s.repo.Grades.CountByFacultyID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	dashboard := &FacultyDashboard{
		FacultyID:       faculty.ID,
		FacultyCode:     faculty.FacultyID,
		FullName:        faculty.FullName,
		Department:      faculty.Department,
		Courses:         make([]FacultyCourseSummary, 0, len(order)),
		TotalStudents:   len(distinctStudents),
		GradesSubmitted: gradesSubmitted,
	}
	for _, courseID := range order {
		dashboard.Courses = append(dashboard.Courses, *byCourse[courseID])
	}
	return dashboard, nil
}
