package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/opencampus/sims-api/model"
)

func TestFacultyDashboardGroupsByCourse(t *testing.T) {
	f := newFakeRepos()
	f.faculties.Create(context.Background(), &model.Faculty{FacultyID: "FAC001", FullName: "Dr. Sharma", Department: "Computer Science", Status: model.StatusActive})
	f.courses.Create(context.Background(), &model.Course{CourseCode: "CS101", CourseName: "Intro to Programming", Credits: 4, Status: model.StatusActive})
	f.courses.Create(context.Background(), &model.Course{CourseCode: "CS201", CourseName: "Data Structures", Credits: 3, Status: model.StatusActive})
	for i := uint(1); i <= 3; i++ {
		f.students.Create(context.Background(), &model.Student{StudentID: fmt.Sprintf("STU000%d", i), Status: model.StatusActive})
	}

	// Students 1 and 2 in CS101, students 2 and 3 in CS201, all with FAC001.
	f.enrollments.Create(context.Background(), &model.Enrollment{StudentID: 1, CourseID: 1, FacultyID: uintPtr(1), Status: model.EnrollmentEnrolled})
	f.enrollments.Create(context.Background(), &model.Enrollment{StudentID: 2, CourseID: 1, FacultyID: uintPtr(1), Status: model.EnrollmentEnrolled})
	f.enrollments.Create(context.Background(), &model.Enrollment{StudentID: 2, CourseID: 2, FacultyID: uintPtr(1), Status: model.EnrollmentEnrolled})
	f.enrollments.Create(context.Background(), &model.Enrollment{StudentID: 3, CourseID: 2, FacultyID: uintPtr(1), Status: model.EnrollmentEnrolled})

	// One grade in CS101.
	f.grades.Create(context.Background(), &model.Grade{EnrollmentID: 1, StudentID: 1, CourseID: 1, FinalScore: floatPtr(81), TotalScore: floatPtr(81), LetterGrade: strPtr("B"), FacultyID: uintPtr(1)})

	svc := NewFacultyDashboardService(f.repo)
	dashboard, err := svc.GetFacultyDashboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard == nil {
		t.Fatal("dashboard missing")
	}
	if dashboard.FacultyCode != "FAC001" || dashboard.Department != "Computer Science" {
		t.Errorf("faculty header = %+v", dashboard)
	}
	if len(dashboard.Courses) != 2 {
		t.Fatalf("courses = %d, want 2", len(dashboard.Courses))
	}
	cs101 := dashboard.Courses[0]
	if cs101.CourseCode != "CS101" || cs101.StudentCount != 2 || cs101.GradedCount != 1 {
		t.Errorf("CS101 summary = %+v", cs101)
	}
	cs201 := dashboard.Courses[1]
	if cs201.CourseCode != "CS201" || cs201.StudentCount != 2 || cs201.GradedCount != 0 {
		t.Errorf("CS201 summary = %+v", cs201)
	}
	if dashboard.TotalStudents != 3 {
		t.Errorf("total students = %d, want 3 distinct", dashboard.TotalStudents)
	}
	if dashboard.GradesSubmitted != 1 {
		t.Errorf("grades submitted = %d, want 1", dashboard.GradesSubmitted)
	}
}

func TestFacultyDashboardUnknownFaculty(t *testing.T) {
	f := newFakeRepos()
	svc := NewFacultyDashboardService(f.repo)
	dashboard, err := svc.GetFacultyDashboard(context.Background(), 9)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dashboard != nil {
		t.Error("expected nil for unknown faculty")
	}
}
