package services

import (
	"context"
	"strings"
	"time"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
)

// In-memory repository doubles. An aggregate built without a database runs
// Transaction callbacks directly, so services behave exactly as in
// production minus the store.

type fakeRepos struct {
	users         *mockUserRepo
	students      *mockStudentRepo
	faculties     *mockFacultyRepo
	courses       *mockCourseRepo
	enrollments   *mockEnrollmentRepo
	grades        *mockGradeRepo
	activityLogs  *mockActivityLogRepo
	notifications *mockNotificationRepo
	adminProfiles *mockAdminProfileRepo

	repo *repository.Repository
}

func newFakeRepos() *fakeRepos {
	f := &fakeRepos{
		users:         &mockUserRepo{},
		students:      &mockStudentRepo{},
		faculties:     &mockFacultyRepo{},
		courses:       &mockCourseRepo{},
		enrollments:   &mockEnrollmentRepo{},
		grades:        &mockGradeRepo{},
		activityLogs:  &mockActivityLogRepo{},
		notifications: &mockNotificationRepo{},
		adminProfiles: &mockAdminProfileRepo{},
	}
	f.repo = &repository.Repository{
		Users:         f.users,
		Students:      f.students,
		Faculties:     f.faculties,
		Courses:       f.courses,
		Enrollments:   f.enrollments,
		Grades:        f.grades,
		ActivityLogs:  f.activityLogs,
		Notifications: f.notifications,
		AdminProfiles: f.adminProfiles,
	}
	return f
}

type mockUserRepo struct {
	users  []model.User
	nextID uint
}

func (m *mockUserRepo) add(u model.User) *model.User {
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	return &m.users[len(m.users)-1]
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*model.User, error) {
	for i := range m.users {
		if strings.EqualFold(m.users[i].Username, identifier) || strings.EqualFold(m.users[i].Email, identifier) {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByReference(_ context.Context, referenceID uint, role string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Role == role && m.users[i].ReferenceID != nil && *m.users[i].ReferenceID == referenceID {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetAll(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), m.users...), nil
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for i := range m.users {
		if m.users[i].ID == user.ID {
			m.users[i] = *user
			return nil
		}
	}
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockStudentRepo struct {
	students []model.Student
	nextID   uint
}

func (m *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	for i := range m.students {
		if m.students[i].ID == id {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepo) GetByStudentID(_ context.Context, studentID string) (*model.Student, error) {
	for i := range m.students {
		if m.students[i].StudentID == studentID {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for i := range m.students {
		if strings.EqualFold(m.students[i].Email, email) {
			s := m.students[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockStudentRepo) GetAll(_ context.Context) ([]model.Student, error) {
	return append([]model.Student(nil), m.students...), nil
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	m.nextID++
	student.ID = m.nextID
	m.students = append(m.students, *student)
	return nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	for i := range m.students {
		if m.students[i].ID == student.ID {
			m.students[i] = *student
			return nil
		}
	}
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id uint) error {
	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

type mockFacultyRepo struct {
	faculties []model.Faculty
	nextID    uint
}

func (m *mockFacultyRepo) GetByID(_ context.Context, id uint) (*model.Faculty, error) {
	for i := range m.faculties {
		if m.faculties[i].ID == id {
			f := m.faculties[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (m *mockFacultyRepo) GetByFacultyID(_ context.Context, facultyID string) (*model.Faculty, error) {
	for i := range m.faculties {
		if m.faculties[i].FacultyID == facultyID {
			f := m.faculties[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (m *mockFacultyRepo) GetByEmail(_ context.Context, email string) (*model.Faculty, error) {
	for i := range m.faculties {
		if strings.EqualFold(m.faculties[i].Email, email) {
			f := m.faculties[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (m *mockFacultyRepo) GetAll(_ context.Context) ([]model.Faculty, error) {
	return append([]model.Faculty(nil), m.faculties...), nil
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	m.nextID++
	faculty.ID = m.nextID
	m.faculties = append(m.faculties, *faculty)
	return nil
}

func (m *mockFacultyRepo) Update(_ context.Context, faculty *model.Faculty) error {
	for i := range m.faculties {
		if m.faculties[i].ID == faculty.ID {
			m.faculties[i] = *faculty
			return nil
		}
	}
	return nil
}

func (m *mockFacultyRepo) Delete(_ context.Context, id uint) error {
	for i := range m.faculties {
		if m.faculties[i].ID == id {
			m.faculties = append(m.faculties[:i], m.faculties[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockFacultyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.faculties)), nil
}

type mockCourseRepo struct {
	courses []model.Course
	nextID  uint
}

func (m *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	for i := range m.courses {
		if m.courses[i].ID == id {
			c := m.courses[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCourseRepo) GetByCourseCode(_ context.Context, courseCode string) (*model.Course, error) {
	for i := range m.courses {
		if m.courses[i].CourseCode == courseCode {
			c := m.courses[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCourseRepo) GetAll(_ context.Context) ([]model.Course, error) {
	return append([]model.Course(nil), m.courses...), nil
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.nextID++
	course.ID = m.nextID
	m.courses = append(m.courses, *course)
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	for i := range m.courses {
		if m.courses[i].ID == course.ID {
			m.courses[i] = *course
			return nil
		}
	}
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id uint) error {
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockCourseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

type mockEnrollmentRepo struct {
	enrollments []model.Enrollment
	nextID      uint
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id uint) (*model.Enrollment, error) {
	for i := range m.enrollments {
		if m.enrollments[i].ID == id {
			e := m.enrollments[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mockEnrollmentRepo) GetByStudentAndCourse(_ context.Context, studentID, courseID uint) (*model.Enrollment, error) {
	for i := range m.enrollments {
		if m.enrollments[i].StudentID == studentID && m.enrollments[i].CourseID == courseID {
			e := m.enrollments[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (m *mockEnrollmentRepo) GetByStudentID(_ context.Context, studentID uint) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) GetByCourseID(_ context.Context, courseID uint) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.CourseID == courseID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) GetByFacultyID(_ context.Context, facultyID uint) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.FacultyID != nil && *e.FacultyID == facultyID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (m *mockEnrollmentRepo) GetAll(_ context.Context) ([]model.Enrollment, error) {
	return append([]model.Enrollment(nil), m.enrollments...), nil
}

func (m *mockEnrollmentRepo) Create(_ context.Context, enrollment *model.Enrollment) error {
	m.nextID++
	enrollment.ID = m.nextID
	m.enrollments = append(m.enrollments, *enrollment)
	return nil
}

func (m *mockEnrollmentRepo) Update(_ context.Context, enrollment *model.Enrollment) error {
	for i := range m.enrollments {
		if m.enrollments[i].ID == enrollment.ID {
			m.enrollments[i] = *enrollment
			return nil
		}
	}
	return nil
}

func (m *mockEnrollmentRepo) Delete(_ context.Context, id uint) error {
	for i := range m.enrollments {
		if m.enrollments[i].ID == id {
			m.enrollments = append(m.enrollments[:i], m.enrollments[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockEnrollmentRepo) CountByFacultyID(_ context.Context, facultyID uint) (int64, error) {
	var count int64
	for _, e := range m.enrollments {
		if e.FacultyID != nil && *e.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

type mockGradeRepo struct {
	grades []model.Grade
	nextID uint
}

func (m *mockGradeRepo) GetByID(_ context.Context, id uint) (*model.Grade, error) {
	for i := range m.grades {
		if m.grades[i].ID == id {
			g := m.grades[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (m *mockGradeRepo) GetByEnrollmentID(_ context.Context, enrollmentID uint) (*model.Grade, error) {
	for i := range m.grades {
		if m.grades[i].EnrollmentID == enrollmentID {
			g := m.grades[i]
			return &g, nil
		}
	}
	return nil, nil
}

func (m *mockGradeRepo) GetByStudentID(_ context.Context, studentID uint) ([]model.Grade, error) {
	var result []model.Grade
	for _, g := range m.grades {
		if g.StudentID == studentID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockGradeRepo) GetByStudentAndCourse(_ context.Context, studentID, courseID uint) ([]model.Grade, error) {
	var result []model.Grade
	for _, g := range m.grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockGradeRepo) GetByFacultyID(_ context.Context, facultyID uint) ([]model.Grade, error) {
	var result []model.Grade
	for _, g := range m.grades {
		if g.FacultyID != nil && *g.FacultyID == facultyID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockGradeRepo) GetAll(_ context.Context) ([]model.Grade, error) {
	return append([]model.Grade(nil), m.grades...), nil
}

func (m *mockGradeRepo) Create(_ context.Context, grade *model.Grade) error {
	m.nextID++
	grade.ID = m.nextID
	m.grades = append(m.grades, *grade)
	return nil
}

func (m *mockGradeRepo) Update(_ context.Context, grade *model.Grade) error {
	for i := range m.grades {
		if m.grades[i].ID == grade.ID {
			m.grades[i] = *grade
			return nil
		}
	}
	return nil
}

func (m *mockGradeRepo) Delete(_ context.Context, id uint) error {
	for i := range m.grades {
		if m.grades[i].ID == id {
			m.grades = append(m.grades[:i], m.grades[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockGradeRepo) CountByFacultyID(_ context.Context, facultyID uint) (int64, error) {
	var count int64
	for _, g := range m.grades {
		if g.FacultyID != nil && *g.FacultyID == facultyID {
			count++
		}
	}
	return count, nil
}

type mockActivityLogRepo struct {
	entries []model.ActivityLog
	nextID  uint
}

func (m *mockActivityLogRepo) Add(_ context.Context, entry *model.ActivityLog) error {
	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockActivityLogRepo) Find(_ context.Context, filter repository.ActivityLogFilter) ([]model.ActivityLog, error) {
	var result []model.ActivityLog
	for _, e := range m.entries {
		if filter.StudentID != nil && (e.StudentID == nil || *e.StudentID != *filter.StudentID) {
			continue
		}
		if filter.CourseID != nil && (e.CourseID == nil || *e.CourseID != *filter.CourseID) {
			continue
		}
		if filter.FacultyID != nil && (e.FacultyID == nil || *e.FacultyID != *filter.FacultyID) {
			continue
		}
		if filter.ActivityType != "" && e.ActivityType != filter.ActivityType {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func (m *mockActivityLogRepo) GetByStudentID(_ context.Context, studentID uint) ([]model.ActivityLog, error) {
	return m.Find(context.Background(), repository.ActivityLogFilter{StudentID: &studentID})
}

type mockNotificationRepo struct {
	notifications []model.Notification
	nextID        uint
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id uint) (*model.Notification, error) {
	for i := range m.notifications {
		if m.notifications[i].ID == id {
			n := m.notifications[i]
			return &n, nil
		}
	}
	return nil, nil
}

func (m *mockNotificationRepo) GetForRecipient(_ context.Context, role string, recipientID uint, unreadOnly bool) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.RecipientRole != role {
			continue
		}
		if n.RecipientID != nil && *n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	m.nextID++
	notification.ID = m.nextID
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id uint) error {
	for i := range m.notifications {
		if m.notifications[i].ID == id {
			m.notifications[i].IsRead = true
			return nil
		}
	}
	return nil
}

func (m *mockNotificationRepo) DeleteReadOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []model.Notification
	var deleted int64
	for _, n := range m.notifications {
		if n.IsRead && n.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	m.notifications = kept
	return deleted, nil
}

type mockAdminProfileRepo struct {
	profile *model.AdminProfile
}

func (m *mockAdminProfileRepo) Get(_ context.Context) (*model.AdminProfile, error) {
	if m.profile == nil {
		return nil, nil
	}
	p := *m.profile
	return &p, nil
}

func (m *mockAdminProfileRepo) Save(_ context.Context, profile *model.AdminProfile) error {
	if profile.ID == 0 {
		profile.ID = 1
	}
	copied := *profile
	m.profile = &copied
	return nil
}
