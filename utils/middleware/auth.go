package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/model"
	"github.com/opencampus/sims-api/utils/auth"
	"github.com/opencampus/sims-api/utils/response"
)

// Role-home paths. A request carrying the wrong role is told where its role
// belongs; an anonymous or unrecognized session is sent to login.
const (
	AdminHome   = "/dashboard/admin"
	FacultyHome = "/dashboard/faculty"
	StudentHome = "/dashboard/student"
	LoginPath   = "/login"
)

// RoleHome maps a session role to its landing path.
func RoleHome(role string) string {
	switch role {
	case model.RoleStudent:
		return StudentHome
	case model.RoleFaculty:
		return FacultyHome
	case model.RoleAdmin:
		return AdminHome
	default:
		return LoginPath
	}
}

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Required is middleware that requires a valid JWT token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get token from Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.UnauthorizedRedirect(c, "Missing authorization token", LoginPath)
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.UnauthorizedRedirect(c, "Invalid authorization format", LoginPath)
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.UnauthorizedRedirect(c, "Token has expired", LoginPath)
			}
			return response.UnauthorizedRedirect(c, "Invalid token", LoginPath)
		}

		// Store identity in context
		c.Locals("user_id", claims.UserID)
		c.Locals("username", claims.Username)
		c.Locals("full_name", claims.FullName)
		c.Locals("user_role", claims.Role)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRole gates a route to the listed roles. Sessions with another role
// get a 403 carrying the home path for their own role.
func (m *AuthMiddleware) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, _ := c.Locals("user_role").(string)
		for _, r := range roles {
			if userRole == r {
				return c.Next()
			}
		}
		return response.ForbiddenRedirect(c, "Insufficient permissions", RoleHome(userRole))
	}
}

// RequireAdmin gates a route to the Admin role.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return m.RequireRole(model.RoleAdmin)
}

// GetUserID extracts the identity id from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("user_id").(uint)
	return id, ok
}

// GetUserRole extracts the session role from context
func GetUserRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals("user_role").(string)
	return role, ok
}

// GetClaims extracts the full claims from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals("claims").(*auth.Claims)
	return claims, ok
}
