package faculty

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// FacultyHandler handles the admin faculty CRUD endpoints.
type FacultyHandler struct {
	facultyService *services.FacultyService
	validator      *validation.Validator
}

// NewFacultyHandler creates a new faculty handler.
func NewFacultyHandler(facultyService *services.FacultyService) *FacultyHandler {
	return &FacultyHandler{
		facultyService: facultyService,
		validator:      validation.NewValidator(),
	}
}

// List returns all faculty, filtered by the optional ?search= query.
func (h *FacultyHandler) List(c *fiber.Ctx) error {
	search := validation.SanitizeString(c.Query("search"))
	faculties, err := h.facultyService.List(c.Context(), search)
	if err != nil {
		return response.InternalServerError(c, "Failed to list faculty")
	}
	return response.Success(c, faculties)
}

// Get returns one faculty member by id.
func (h *FacultyHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid faculty id")
	}
	faculty, err := h.facultyService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to load faculty")
	}
	if faculty == nil {
		return response.NotFound(c, "Faculty not found")
	}
	return response.Success(c, faculty)
}

// Create adds a faculty member and its login account.
func (h *FacultyHandler) Create(c *fiber.Ctx) error {
	var req services.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	faculty, err := h.facultyService.Create(c.Context(), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to create faculty")
	}
	return response.Created(c, faculty)
}

// Update edits a faculty member and syncs its login account.
func (h *FacultyHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid faculty id")
	}
	var req services.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	faculty, err := h.facultyService.Update(c.Context(), uint(id), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to update faculty")
	}
	if faculty == nil {
		return response.NotFound(c, "Faculty not found")
	}
	return response.Success(c, faculty)
}

// DeletionImpact reports how many enrollments and grades would lose their
// faculty reference, for the delete confirmation dialog.
func (h *FacultyHandler) DeletionImpact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid faculty id")
	}
	impact, err := h.facultyService.GetDeletionImpact(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to compute deletion impact")
	}
	if impact == nil {
		return response.NotFound(c, "Faculty not found")
	}
	return response.Success(c, impact)
}

// Delete removes a faculty member, clearing its references on enrollments
// and grades.
func (h *FacultyHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid faculty id")
	}
	found, err := h.facultyService.Delete(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete faculty")
	}
	if !found {
		return response.NotFound(c, "Faculty not found")
	}
	return response.SuccessWithMessage(c, "Faculty deleted", nil)
}
