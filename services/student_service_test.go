package services

import (
	"context"
	"errors"
	"testing"

	"github.com/opencampus/sims-api/model"
)

func TestCreateStudentPairsUserAccount(t *testing.T) {
	f := newFakeRepos()
	svc := NewStudentService(f.repo)

	student, err := svc.Create(context.Background(), CreateStudentRequest{
		StudentID: "STU0001",
		FullName:  "Aarav Patel",
		Email:     "aarav@example.edu",
		Program:   "B.Tech CS",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if student.Status != model.StatusActive {
		t.Errorf("status = %q, want default Active", student.Status)
	}

	user, err := f.users.GetByReference(context.Background(), student.ID, model.RoleStudent)
	if err != nil {
		t.Fatalf("get paired user: %v", err)
	}
	if user == nil {
		t.Fatal("expected a paired User account")
	}
	if user.Username != "STU0001" {
		t.Errorf("username = %q, want natural key default", user.Username)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored unhashed")
	}
}

func TestCreateStudentDuplicateNaturalKey(t *testing.T) {
	f := newFakeRepos()
	svc := NewStudentService(f.repo)

	req := CreateStudentRequest{StudentID: "STU0001", FullName: "Aarav Patel", Email: "aarav@example.edu", Password: "secret123"}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req.Email = "other@example.edu"
	_, err := svc.Create(context.Background(), req)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if conflict.Message != "Student ID already exists." {
		t.Errorf("message = %q", conflict.Message)
	}
}

func TestCreateStudentDuplicateEmailCheckedAfterNaturalKey(t *testing.T) {
	f := newFakeRepos()
	svc := NewStudentService(f.repo)

	if _, err := svc.Create(context.Background(), CreateStudentRequest{StudentID: "STU0001", FullName: "Aarav Patel", Email: "shared@example.edu", Password: "secret123"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(context.Background(), CreateStudentRequest{StudentID: "STU0002", FullName: "Ishita Rao", Email: "shared@example.edu", Password: "secret123"})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if conflict.Message != "Email already exists." {
		t.Errorf("message = %q", conflict.Message)
	}

	// Same studentId AND same email reports the natural key first.
	_, err = svc.Create(context.Background(), CreateStudentRequest{StudentID: "STU0001", FullName: "Aarav Patel", Email: "shared@example.edu", Password: "secret123"})
	if !errors.As(err, &conflict) || conflict.Message != "Student ID already exists." {
		t.Errorf("expected natural key conflict first, got %v", err)
	}
}

func TestUpdateStudentSyncsUser(t *testing.T) {
	f := newFakeRepos()
	svc := NewStudentService(f.repo)

	student, err := svc.Create(context.Background(), CreateStudentRequest{StudentID: "STU0001", FullName: "Aarav Patel", Email: "aarav@example.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pairedBefore, _ := f.users.GetByReference(context.Background(), student.ID, model.RoleStudent)

	updated, err := svc.Update(context.Background(), student.ID, UpdateStudentRequest{
		FullName: "Aarav P. Patel",
		Email:    "aarav.patel@example.edu",
		Program:  "B.Tech CS",
		Status:   model.StatusInactive,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != "Aarav P. Patel" {
		t.Errorf("full name = %q", updated.FullName)
	}

	paired, _ := f.users.GetByReference(context.Background(), student.ID, model.RoleStudent)
	if paired.FullName != "Aarav P. Patel" || paired.Email != "aarav.patel@example.edu" || paired.Status != model.StatusInactive {
		t.Errorf("paired user not synced: %+v", paired)
	}
	if paired.PasswordHash != pairedBefore.PasswordHash {
		t.Error("password changed without a new password in the request")
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	f := newFakeRepos()
	svc := NewStudentService(f.repo)

	student, err := svc.Update(context.Background(), 42, UpdateStudentRequest{FullName: "Ghost", Email: "ghost@example.edu"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if student != nil {
		t.Error("expected nil for a missing student")
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	f := newFakeRepos()
	svc := NewStudentService(f.repo)

	student, err := svc.Create(context.Background(), CreateStudentRequest{StudentID: "STU0001", FullName: "Aarav Patel", Email: "aarav@example.edu", Password: "secret123"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	f.courses.Create(context.Background(), &model.Course{CourseCode: "CS101", CourseName: "Intro", Credits: 4, Status: model.StatusActive})
	enrollment := &model.Enrollment{StudentID: student.ID, CourseID: 1, Status: model.EnrollmentEnrolled}
	f.enrollments.Create(context.Background(), enrollment)
	score := 88.0
	f.grades.Create(context.Background(), &model.Grade{EnrollmentID: enrollment.ID, StudentID: student.ID, CourseID: 1, FinalScore: &score, TotalScore: &score})

	found, err := svc.Delete(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !found {
		t.Fatal("expected delete to report found")
	}
	if len(f.enrollments.enrollments) != 0 {
		t.Errorf("enrollments left after delete: %d", len(f.enrollments.enrollments))
	}
	if len(f.grades.grades) != 0 {
		t.Errorf("grades left after delete: %d", len(f.grades.grades))
	}
	if len(f.users.users) != 0 {
		t.Errorf("paired user left after delete: %d", len(f.users.users))
	}

	found, err = svc.Delete(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if found {
		t.Error("expected second delete to report not found")
	}
}
