package services

import (
	"context"
	"errors"
	"testing"

	"github.com/opencampus/sims-api/model"
)

func TestCreateCourseDuplicateCode(t *testing.T) {
	f := newFakeRepos()
	svc := NewCourseService(f.repo)

	if _, err := svc.Create(context.Background(), CourseRequest{CourseCode: "CS101", CourseName: "Intro", Credits: 4}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), CourseRequest{CourseCode: "CS101", CourseName: "Other", Credits: 3})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if conflict.Message != "Course Code already exists." {
		t.Errorf("message = %q", conflict.Message)
	}
}

func TestUpdateCourseAllowsOwnCode(t *testing.T) {
	f := newFakeRepos()
	svc := NewCourseService(f.repo)

	course, err := svc.Create(context.Background(), CourseRequest{CourseCode: "CS101", CourseName: "Intro", Credits: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), course.ID, CourseRequest{CourseCode: "CS101", CourseName: "Intro to Programming", Credits: 4})
	if err != nil {
		t.Fatalf("update with own code: %v", err)
	}
	if updated.CourseName != "Intro to Programming" {
		t.Errorf("name = %q", updated.CourseName)
	}
}

func TestDeleteCourseCascades(t *testing.T) {
	f := newFakeRepos()
	svc := NewCourseService(f.repo)

	course, err := svc.Create(context.Background(), CourseRequest{CourseCode: "CS101", CourseName: "Intro", Credits: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.students.Create(context.Background(), &model.Student{StudentID: "STU0001", FullName: "Aarav", Email: "a@example.edu", Status: model.StatusActive})
	f.students.Create(context.Background(), &model.Student{StudentID: "STU0002", FullName: "Ishita", Email: "i@example.edu", Status: model.StatusActive})

	e1 := &model.Enrollment{StudentID: 1, CourseID: course.ID, Status: model.EnrollmentEnrolled}
	e2 := &model.Enrollment{StudentID: 2, CourseID: course.ID, Status: model.EnrollmentEnrolled}
	f.enrollments.Create(context.Background(), e1)
	f.enrollments.Create(context.Background(), e2)
	score := 75.0
	f.grades.Create(context.Background(), &model.Grade{EnrollmentID: e1.ID, StudentID: 1, CourseID: course.ID, FinalScore: &score, TotalScore: &score})

	found, err := svc.Delete(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Fatal("expected found")
	}
	if len(f.enrollments.enrollments) != 0 {
		t.Errorf("enrollments left: %d", len(f.enrollments.enrollments))
	}
	if len(f.grades.grades) != 0 {
		t.Errorf("grades left: %d", len(f.grades.grades))
	}
	if len(f.courses.courses) != 0 {
		t.Errorf("course row left")
	}
}

func TestCourseDeletionImpact(t *testing.T) {
	f := newFakeRepos()
	svc := NewCourseService(f.repo)

	course, err := svc.Create(context.Background(), CourseRequest{CourseCode: "CS101", CourseName: "Intro", Credits: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	f.enrollments.Create(context.Background(), &model.Enrollment{StudentID: 1, CourseID: course.ID, Status: model.EnrollmentEnrolled})
	f.enrollments.Create(context.Background(), &model.Enrollment{StudentID: 2, CourseID: course.ID, Status: model.EnrollmentEnrolled})
	score := 88.0
	f.grades.Create(context.Background(), &model.Grade{EnrollmentID: 1, StudentID: 1, CourseID: course.ID, FinalScore: &score, TotalScore: &score})

	impact, err := svc.GetDeletionImpact(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("impact: %v", err)
	}
	if impact.Enrollments != 2 || impact.Grades != 1 {
		t.Errorf("impact = %+v, want 2 enrollments and 1 grade", impact)
	}

	// Counting must not mutate.
	if len(f.enrollments.enrollments) != 2 || len(f.grades.grades) != 1 {
		t.Error("impact query mutated rows")
	}

	if missing, _ := svc.GetDeletionImpact(context.Background(), 99); missing != nil {
		t.Error("expected nil for unknown course")
	}
}
