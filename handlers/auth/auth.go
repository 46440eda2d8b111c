package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/auth"
	"github.com/opencampus/sims-api/utils/middleware"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// AuthHandler handles login, logout and profile endpoints.
type AuthHandler struct {
	authService *services.AuthService
	jwtManager  *auth.JWTManager
	bruteForce  *middleware.BruteForceProtection
	validator   *validation.Validator
}

// NewAuthHandler creates a new auth handler. bruteForce may be nil when
// Redis is not configured.
func NewAuthHandler(authService *services.AuthService, jwtManager *auth.JWTManager, bruteForce *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtManager:  jwtManager,
		bruteForce:  bruteForce,
		validator:   validation.NewValidator(),
	}
}

// LoginRequest represents a login attempt. Identifier is a username or an
// email address.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	User        services.AuthenticatedUser `json:"user"`
	AccessToken string                     `json:"access_token"`
	ExpiresIn   int                        `json:"expires_in"` // in seconds
	Redirect    string                     `json:"redirect"`
}

// Login authenticates a user and issues a token. All failure modes return
// the same message so callers cannot probe for accounts.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Identifier == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	ip := c.IP()

	user, err := h.authService.Authenticate(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to authenticate")
	}
	if user == nil {
		if h.bruteForce != nil {
			h.bruteForce.RecordFailedAttempt(c, ip)
		}
		return response.UnauthorizedRedirect(c, "Invalid username or password", middleware.LoginPath)
	}

	if h.bruteForce != nil {
		h.bruteForce.RecordSuccessfulAttempt(c, ip)
	}

	token, _, err := h.jwtManager.GenerateToken(user.UserID, user.Username, user.FullName, user.Role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.Success(c, LoginResponse{
		User:        *user,
		AccessToken: token,
		ExpiresIn:   24 * 60 * 60,
		Redirect:    middleware.RoleHome(user.Role),
	})
}

// Logout acknowledges a logout. Tokens are stateless; the client discards
// its copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return response.SuccessWithMessage(c, "Logged out", fiber.Map{
		"redirect": middleware.LoginPath,
	})
}

// Me returns the identity carried by the current token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return response.UnauthorizedRedirect(c, "Not authenticated", middleware.LoginPath)
	}
	return response.Success(c, fiber.Map{
		"user_id":   claims.UserID,
		"username":  claims.Username,
		"full_name": claims.FullName,
		"role":      claims.Role,
	})
}

// ChangePasswordRequest carries the change-password form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// ChangePassword updates the current user's password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.UnauthorizedRedirect(c, "Not authenticated", middleware.LoginPath)
	}
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	if err := h.authService.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if conflict, ok := err.(*services.ConflictError); ok {
			return response.BadRequest(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to change password")
	}
	return response.SuccessWithMessage(c, "Password changed", nil)
}
