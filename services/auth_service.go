package services

import (
	"context"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/repository"
	"github.com/opencampus/sims-api/utils/auth"
)

// AuthService resolves login credentials to a role plus identity.
type AuthService struct {
	repo     *repository.Repository
	verifier *auth.PasswordVerifier
}

// NewAuthService creates a new auth service.
func NewAuthService(repo *repository.Repository, verifier *auth.PasswordVerifier) *AuthService {
	return &AuthService{repo: repo, verifier: verifier}
}

// AuthenticatedUser is the identity established by a successful login.
// IdentityID is the Student/Faculty row id for those roles and the User id
// for admins.
type AuthenticatedUser struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	IdentityID uint   `json:"identity_id"`
	FullName   string `json:"full_name"`
}

// Authenticate looks up the account by username or email (case-insensitive)
// and verifies the password. It returns (nil, nil) for every failure mode:
// unknown identifier, wrong password, inactive account, dangling reference,
// unrecognized role. Callers must not tell those apart.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (*AuthenticatedUser, error) {
	user, err := s.repo.Users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != model.StatusActive {
		return nil, nil
	}
	if !s.verifier.Verify(password, user.PasswordHash) {
		return nil, nil
	}

	switch user.Role {
	case model.RoleStudent:
		if user.ReferenceID == nil {
			return nil, nil
		}
		student, err := s.repo.Students.GetByID(ctx, *user.ReferenceID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, nil
		}
		return &AuthenticatedUser{
			UserID:     user.ID,
			Username:   user.Username,
			Role:       model.RoleStudent,
			IdentityID: student.ID,
			FullName:   student.FullName,
		}, nil
	case model.RoleFaculty:
		if user.ReferenceID == nil {
			return nil, nil
		}
		faculty, err := s.repo.Faculties.GetByID(ctx, *user.ReferenceID)
		if err != nil {
			return nil, err
		}
		if faculty == nil {
			return nil, nil
		}
		return &AuthenticatedUser{
			UserID:     user.ID,
			Username:   user.Username,
			Role:       model.RoleFaculty,
			IdentityID: faculty.ID,
			FullName:   faculty.FullName,
		}, nil
	case model.RoleAdmin:
		return &AuthenticatedUser{
			UserID:     user.ID,
			Username:   user.Username,
			Role:       model.RoleAdmin,
			IdentityID: user.ID,
			FullName:   user.FullName,
		}, nil
	default:
		return nil, nil
	}
}

// ResolveIdentity maps a user id back to its role identity, the same shape
// Authenticate returns. Returns nil when the user is gone, inactive or its
// profile reference dangles.
func (s *AuthService) ResolveIdentity(ctx context.Context, userID uint) (*AuthenticatedUser, error) {
	user, err := s.repo.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != model.StatusActive {
		return nil, nil
	}
	switch user.Role {
	case model.RoleStudent, model.RoleFaculty:
		if user.ReferenceID == nil {
			return nil, nil
		}
		identity := &AuthenticatedUser{
			UserID:     user.ID,
			Username:   user.Username,
			Role:       user.Role,
			IdentityID: *user.ReferenceID,
		}
		if user.Role == model.RoleStudent {
			student, err := s.repo.Students.GetByID(ctx, *user.ReferenceID)
			if err != nil {
				return nil, err
			}
			if student == nil {
				return nil, nil
			}
			identity.FullName = student.FullName
		} else {
			faculty, err := s.repo.Faculties.GetByID(ctx, *user.ReferenceID)
			if err != nil {
				return nil, err
			}
			if faculty == nil {
				return nil, nil
			}
			identity.FullName = faculty.FullName
		}
		return identity, nil
	case model.RoleAdmin:
		return &AuthenticatedUser{
			UserID:     user.ID,
			Username:   user.Username,
			Role:       model.RoleAdmin,
			IdentityID: user.ID,
			FullName:   user.FullName,
		}, nil
	default:
		return nil, nil
	}
}

// ChangePassword verifies the current password for the user and stores a
// hash of the new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.repo.Users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return Conflict("User not found.")
	}
	if !s.verifier.Verify(currentPassword, user.PasswordHash) {
		return Conflict("Current password is incorrect.")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return Conflict("Password cannot be empty.")
	}
	user.PasswordHash = hash
	return s.repo.Users.Update(ctx, user)
}
