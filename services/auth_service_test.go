package services

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/utils/auth"
)

// testHash produces a low-cost bcrypt hash so tests stay fast.
func testHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func uintPtr(v uint) *uint {
	return &v
}

func TestAuthenticateStudentSuccess(t *testing.T) {
	f := newFakeRepos()
	f.students.Create(context.Background(), &model.Student{StudentID: "STU0001", FullName: "Aarav Patel", Email: "aarav@example.edu", Status: model.StatusActive})
	f.users.add(model.User{
		Username:     "STU0001",
		PasswordHash: testHash(t, "secret123"),
		FullName:     "Aarav Patel",
		Email:        "aarav@example.edu",
		Role:         model.RoleStudent,
		ReferenceID:  uintPtr(1),
		Status:       model.StatusActive,
	})

	svc := NewAuthService(f.repo, auth.NewPasswordVerifier())
	identity, err := svc.Authenticate(context.Background(), "STU0001", "secret123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity == nil {
		t.Fatal("expected successful authentication")
	}
	if identity.Role != model.RoleStudent {
		t.Errorf("role = %q, want %q", identity.Role, model.RoleStudent)
	}
	if identity.IdentityID != 1 {
		t.Errorf("identity id = %d, want 1", identity.IdentityID)
	}
	if identity.FullName != "Aarav Patel" {
		t.Errorf("full name = %q, want student's name", identity.FullName)
	}
}

func TestAuthenticateAdminIgnoresReference(t *testing.T) {
	f := newFakeRepos()
	admin := f.users.add(model.User{
		Username:     "admin",
		PasswordHash: testHash(t, "adminpass"),
		FullName:     "System Administrator",
		Email:        "admin@example.edu",
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
	})

	svc := NewAuthService(f.repo, auth.NewPasswordVerifier())
	identity, err := svc.Authenticate(context.Background(), "admin", "adminpass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity == nil {
		t.Fatal("expected successful authentication")
	}
	if identity.IdentityID != admin.ID {
		t.Errorf("identity id = %d, want user id %d", identity.IdentityID, admin.ID)
	}
}

func TestAuthenticateFailureModes(t *testing.T) {
	f := newFakeRepos()
	f.faculties.Create(context.Background(), &model.Faculty{FacultyID: "FAC001", FullName: "Dr. Sharma", Email: "sharma@example.edu", Status: model.StatusActive})
	hash := testHash(t, "correct")

	f.users.add(model.User{Username: "inactive", PasswordHash: hash, Email: "inactive@example.edu", Role: model.RoleFaculty, ReferenceID: uintPtr(1), Status: model.StatusInactive})
	f.users.add(model.User{Username: "noref", PasswordHash: hash, Email: "noref@example.edu", Role: model.RoleFaculty, Status: model.StatusActive})
	f.users.add(model.User{Username: "dangling", PasswordHash: hash, Email: "dangling@example.edu", Role: model.RoleStudent, ReferenceID: uintPtr(99), Status: model.StatusActive})
	f.users.add(model.User{Username: "registrar", PasswordHash: hash, Email: "registrar@example.edu", Role: "Registrar", Status: model.StatusActive})
	f.users.add(model.User{Username: "faculty", PasswordHash: hash, Email: "faculty@example.edu", Role: model.RoleFaculty, ReferenceID: uintPtr(1), Status: model.StatusActive})

	svc := NewAuthService(f.repo, auth.NewPasswordVerifier())

	cases := []struct {
		name       string
		identifier string
		password   string
	}{
		{"unknown identifier", "ghost", "correct"},
		{"wrong password", "faculty", "wrong"},
		{"inactive account", "inactive", "correct"},
		{"missing reference", "noref", "correct"},
		{"dangling reference", "dangling", "correct"},
		{"unrecognized role", "registrar", "correct"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := svc.Authenticate(context.Background(), tc.identifier, tc.password)
			if err != nil {
				t.Fatalf("authenticate: %v", err)
			}
			if identity != nil {
				t.Errorf("expected uniform failure, got identity %+v", identity)
			}
		})
	}
}

func TestAuthenticateCaseInsensitiveLookup(t *testing.T) {
	f := newFakeRepos()
	f.faculties.Create(context.Background(), &model.Faculty{FacultyID: "FAC001", FullName: "Dr. Sharma", Email: "sharma@example.edu", Status: model.StatusActive})
	f.users.add(model.User{
		Username:     "FAC001",
		PasswordHash: testHash(t, "secret123"),
		Email:        "Sharma@Example.edu",
		Role:         model.RoleFaculty,
		ReferenceID:  uintPtr(1),
		Status:       model.StatusActive,
	})

	svc := NewAuthService(f.repo, auth.NewPasswordVerifier())

	for _, identifier := range []string{"fac001", "FAC001", "SHARMA@EXAMPLE.EDU", "sharma@example.edu"} {
		identity, err := svc.Authenticate(context.Background(), identifier, "secret123")
		if err != nil {
			t.Fatalf("authenticate %q: %v", identifier, err)
		}
		if identity == nil {
			t.Errorf("expected %q to authenticate", identifier)
		}
	}
}

func TestAuthenticateLegacyPlaintextFallback(t *testing.T) {
	f := newFakeRepos()
	f.users.add(model.User{
		Username:     "admin",
		PasswordHash: "plaintext-password",
		Role:         model.RoleAdmin,
		Status:       model.StatusActive,
	})

	legacy := NewAuthService(f.repo, auth.NewPasswordVerifier())
	identity, err := legacy.Authenticate(context.Background(), "admin", "plaintext-password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity == nil {
		t.Fatal("expected legacy plaintext login to succeed while the fallback is on")
	}

	strict := NewAuthService(f.repo, &auth.PasswordVerifier{AllowLegacyPlaintext: false})
	identity, err = strict.Authenticate(context.Background(), "admin", "plaintext-password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if identity != nil {
		t.Fatal("expected legacy plaintext login to fail once the fallback is off")
	}
}
