package enrollment

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// EnrollmentHandler handles the admin enrollment endpoints.
type EnrollmentHandler struct {
	enrollmentService *services.EnrollmentService
	validator         *validation.Validator
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollmentService *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
		validator:         validation.NewValidator(),
	}
}

// List returns every enrollment with names resolved for display.
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	views, err := h.enrollmentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list enrollments")
	}
	return response.Success(c, views)
}

// Get returns one enrollment by id.
func (h *EnrollmentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid enrollment id")
	}
	enrollment, err := h.enrollmentService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to load enrollment")
	}
	if enrollment == nil {
		return response.NotFound(c, "Enrollment not found")
	}
	return response.Success(c, enrollment)
}

// Create enrolls a student in a course. Re-enrolling the same pair fails
// unless it only adds a faculty to an unassigned enrollment.
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var req services.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	enrollment, err := h.enrollmentService.Create(c.Context(), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to create enrollment")
	}
	return response.Created(c, enrollment)
}

// Update sets the enrollment's faculty and status.
func (h *EnrollmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid enrollment id")
	}
	var req services.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	enrollment, err := h.enrollmentService.Update(c.Context(), uint(id), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to update enrollment")
	}
	if enrollment == nil {
		return response.NotFound(c, "Enrollment not found")
	}
	return response.Success(c, enrollment)
}

// Delete removes an enrollment and its grade.
func (h *EnrollmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid enrollment id")
	}
	found, err := h.enrollmentService.Delete(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete enrollment")
	}
	if !found {
		return response.NotFound(c, "Enrollment not found")
	}
	return response.SuccessWithMessage(c, "Enrollment deleted", nil)
}
