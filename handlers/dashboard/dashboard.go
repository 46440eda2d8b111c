package dashboard

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/middleware"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// DashboardHandler serves the role landing pages: admin counters, student
// courses with GPA, and the faculty grading overview.
type DashboardHandler struct {
	dashboardService        *services.DashboardService
	facultyDashboardService *services.FacultyDashboardService
	authService             *services.AuthService
	validator               *validation.Validator
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService *services.DashboardService, facultyDashboardService *services.FacultyDashboardService, authService *services.AuthService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:        dashboardService,
		facultyDashboardService: facultyDashboardService,
		authService:             authService,
		validator:               validation.NewValidator(),
	}
}

func (h *DashboardHandler) identity(c *fiber.Ctx) (*services.AuthenticatedUser, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, response.UnauthorizedRedirect(c, "Not authenticated", middleware.LoginPath)
	}
	identity, err := h.authService.ResolveIdentity(c.Context(), userID)
	if err != nil {
		return nil, response.InternalServerError(c, "Failed to resolve identity")
	}
	if identity == nil {
		return nil, response.UnauthorizedRedirect(c, "Not authenticated", middleware.LoginPath)
	}
	return identity, nil
}

// Admin returns the admin landing page counters.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	dashboard, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	return response.Success(c, dashboard)
}

// Student returns the student landing page: enrolled courses, total credits
// and GPA.
func (h *DashboardHandler) Student(c *fiber.Ctx) error {
	identity, errResp := h.identity(c)
	if errResp != nil {
		return errResp
	}
	dashboard, err := h.dashboardService.GetStudentDashboard(c.Context(), identity.IdentityID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	if dashboard == nil {
		return response.NotFound(c, "Student not found")
	}
	return response.Success(c, dashboard)
}

// StudentGrades returns the student's grade listing.
func (h *DashboardHandler) StudentGrades(c *fiber.Ctx) error {
	identity, errResp := h.identity(c)
	if errResp != nil {
		return errResp
	}
	grades, err := h.dashboardService.GetStudentGrades(c.Context(), identity.IdentityID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load grades")
	}
	if grades == nil {
		return response.NotFound(c, "Student not found")
	}
	return response.Success(c, grades)
}

// Faculty returns the faculty landing page: assigned courses with roster
// sizes and grading progress.
func (h *DashboardHandler) Faculty(c *fiber.Ctx) error {
	identity, errResp := h.identity(c)
	if errResp != nil {
		return errResp
	}
	dashboard, err := h.facultyDashboardService.GetFacultyDashboard(c.Context(), identity.IdentityID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load dashboard")
	}
	if dashboard == nil {
		return response.NotFound(c, "Faculty not found")
	}
	return response.Success(c, dashboard)
}

// AdminProfile returns the stored admin display profile.
func (h *DashboardHandler) AdminProfile(c *fiber.Ctx) error {
	profile, err := h.dashboardService.GetAdminProfile(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load profile")
	}
	if profile == nil {
		return response.NotFound(c, "Profile not set")
	}
	return response.Success(c, profile)
}

// UpdateAdminProfile saves the admin display profile.
func (h *DashboardHandler) UpdateAdminProfile(c *fiber.Ctx) error {
	var req services.UpdateAdminProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	profile, err := h.dashboardService.UpdateAdminProfile(c.Context(), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to save profile")
	}
	return response.Success(c, profile)
}
