package services

import (
	"context"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// DashboardService builds the derived read models behind the student and
// admin dashboards. It never writes.
type DashboardService struct {
	repo *repository.Repository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repo *repository.Repository) *DashboardService {
	return &DashboardService{repo: repo}
}

// CourseSummary is one currently-enrolled course on the student dashboard.
type CourseSummary struct {
	CourseID    uint   `json:"course_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	FacultyName string `json:"faculty_name"`
	Credits     int    `json:"credits"`
	Status      string `json:"status"`
}

// StudentDashboard is the student landing page payload. GPA is nil when the
// student has no graded enrolled courses; that is not the same as 0.0.
type StudentDashboard struct {
	StudentID    uint            `json:"student_id"`
	StudentCode  string          `json:"student_code"`
	FullName     string          `json:"full_name"`
	Program      string          `json:"program"`
	Courses      []CourseSummary `json:"courses"`
	TotalCredits int             `json:"total_credits"`
	GPA          *float64        `json:"gpa"`
}

// StudentGradeView is one row of the student's grade listing.
type StudentGradeView struct {
	CourseCode  string   `json:"course_code"`
	CourseName  string   `json:"course_name"`
	Credits     int      `json:"credits"`
	FinalScore  *float64 `json:"final_score"`
	LetterGrade *string  `json:"letter_grade"`
	Comment     *string  `json:"comment"`
}

// GetStudentDashboard gathers the student's Enrolled courses, sums their
// credits and computes the credit-weighted GPA. Returns nil when the
// student does not exist.
func (s *DashboardService) GetStudentDashboard(ctx context.Context, studentID uint) (*StudentDashboard, error) {
	student, err := s.repo.Students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}

	enrollments, err := s.repo.Enrollments.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dashboard := &StudentDashboard{
		StudentID:   student.ID,
		StudentCode: student.StudentID,
		FullName:    student.FullName,
		Program:     student.Program,
		Courses:     []CourseSummary{},
	}

	// Credits per enrolled course id; only these courses qualify for GPA.
	enrolledCredits := make(map[uint]int)
	for _, enrollment := range enrollments {
		if enrollment.Status != model.EnrollmentEnrolled {
			continue
		}
		course, err := s.repo.Courses.GetByID(ctx, enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			continue
		}
		summary := CourseSummary{
			CourseID:    course.ID,
			Code:        course.CourseCode,
			Name:        course.CourseName,
			FacultyName: NotAssigned,
			Credits:     course.Credits,
			Status:      course.Status,
		}
		if enrollment.FacultyID != nil {
			faculty, err := s.repo.Faculties.GetByID(ctx, *enrollment.FacultyID)
			if err != nil {
				return nil, err
			}
			if faculty != nil {
				summary.FacultyName = faculty.FullName
			}
		}
		dashboard.Courses = append(dashboard.Courses, summary)
		dashboard.TotalCredits += course.Credits
		enrolledCredits[course.ID] = course.Credits
	}

	grades, err := s.repo.Grades.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	var weightedSum, creditSum float64
	for _, grade := range grades {
		if grade.TotalScore == nil {
			continue
		}
		credits, enrolled := enrolledCredits[grade.CourseID]
		if !enrolled {
			continue
		}
		letter := ""
		if grade.LetterGrade != nil {
			letter = *grade.LetterGrade
		} else {
			letter = LetterGrade(*grade.TotalScore)
		}
		weightedSum += GradePoint(letter) * float64(credits)
		creditSum += float64(credits)
	}
	if creditSum > 0 {
		gpa := weightedSum / creditSum
		dashboard.GPA = &gpa
	}
	return dashboard, nil
}

// GetStudentGrades lists every grade the student has received, joined with
// course details. Returns nil when the student does not exist.
func (s *DashboardService) GetStudentGrades(ctx context.Context, studentID uint) ([]StudentGradeView, error) {
	student, err := s.repo.Students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}
	grades, err := s.repo.Grades.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	views := make([]StudentGradeView, 0, len(grades))
	for _, grade := range grades {
		view := StudentGradeView{
			FinalScore:  grade.FinalScore,
			LetterGrade: grade.LetterGrade,
			Comment:     grade.Comment,
		}
		course, err := s.repo.Courses.GetByID(ctx, grade.CourseID)
		if err != nil {
			return nil, err
		}
		if course != nil {
			view.CourseCode = course.CourseCode
			view.CourseName = course.CourseName
			view.Credits = course.Credits
		}
		views = append(views, view)
	}
	return views, nil
}

// AdminDashboard carries the admin landing page counters.
type AdminDashboard struct {
	TotalStudents    int64 `json:"total_students"`
	TotalFaculty     int64 `json:"total_faculty"`
	TotalCourses     int64 `json:"total_courses"`
	TotalEnrollments int   `json:"total_enrollments"`
}

// GetAdminDashboard counts the main entities for the admin landing page.
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	students, err := s.repo.Students.Count(ctx)
	if err != nil {
		return nil, err
	}
	faculty, err := s.repo.Faculties.Count(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.repo.Courses.Count(ctx)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.repo.Enrollments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminDashboard{
		TotalStudents:    students,
		TotalFaculty:     faculty,
		TotalCourses:     courses,
		TotalEnrollments: len(enrollments),
	}, nil
}

// GetAdminProfile returns the stored admin display profile, or nil when it
// has never been saved.
func (s *DashboardService) GetAdminProfile(ctx context.Context) (*model.AdminProfile, error) {
	return s.repo.AdminProfiles.Get(ctx)
}

// UpdateAdminProfileRequest carries the admin profile form.
type UpdateAdminProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address"`
}

// UpdateAdminProfile saves the admin display profile.
func (s *DashboardService) UpdateAdminProfile(ctx context.Context, req UpdateAdminProfileRequest) (*model.AdminProfile, error) {
	profile, err := s.repo.AdminProfiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &model.AdminProfile{}
	}
	profile.FullName = req.FullName
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.Address = req.Address
	if err := s.repo.AdminProfiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
