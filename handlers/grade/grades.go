package grade

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/middleware"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// GradeHandler handles the faculty grading endpoints.
type GradeHandler struct {
	gradeService *services.GradeService
	authService  *services.AuthService
	validator    *validation.Validator
}

// NewGradeHandler creates a new grade handler.
func NewGradeHandler(gradeService *services.GradeService, authService *services.AuthService) *GradeHandler {
	return &GradeHandler{
		gradeService: gradeService,
		authService:  authService,
		validator:    validation.NewValidator(),
	}
}

// facultyID resolves the Faculty row id of the authenticated user.
func (h *GradeHandler) facultyID(c *fiber.Ctx) (uint, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return 0, response.UnauthorizedRedirect(c, "Not authenticated", middleware.LoginPath)
	}
	identity, err := h.authService.ResolveIdentity(c.Context(), userID)
	if err != nil {
		return 0, response.InternalServerError(c, "Failed to resolve identity")
	}
	if identity == nil {
		return 0, response.UnauthorizedRedirect(c, "Not authenticated", middleware.LoginPath)
	}
	return identity.IdentityID, nil
}

// Roster lists the students of one course that this faculty grades, with
// their current grades.
func (h *GradeHandler) Roster(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}
	facultyID, errResp := h.facultyID(c)
	if errResp != nil {
		return errResp
	}
	rows, err := h.gradeService.GetCourseRoster(c.Context(), uint(courseID), facultyID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load roster")
	}
	return response.Success(c, rows)
}

// SaveGradesRequest is the grading form: a batch of per-student rows.
type SaveGradesRequest struct {
	Grades []services.GradeSubmission `json:"grades" validate:"required,dive"`
}

// Save persists the submitted scores for one course. Rows without scores or
// outside this faculty's assignments are skipped.
func (h *GradeHandler) Save(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}
	facultyID, errResp := h.facultyID(c)
	if errResp != nil {
		return errResp
	}
	var req SaveGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	saved, err := h.gradeService.SaveGrades(c.Context(), uint(courseID), facultyID, req.Grades)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to save grades")
	}
	return response.SuccessWithMessage(c, "Grades saved", fiber.Map{"saved": saved})
}
