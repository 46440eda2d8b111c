package student

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// StudentHandler handles the admin student CRUD endpoints.
type StudentHandler struct {
	studentService *services.StudentService
	validator      *validation.Validator
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		validator:      validation.NewValidator(),
	}
}

// List returns all students, filtered by the optional ?search= query.
func (h *StudentHandler) List(c *fiber.Ctx) error {
	search := validation.SanitizeString(c.Query("search"))
	students, err := h.studentService.List(c.Context(), search)
	if err != nil {
		return response.InternalServerError(c, "Failed to list students")
	}
	return response.Success(c, students)
}

// Get returns one student by id.
func (h *StudentHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid student id")
	}
	student, err := h.studentService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to load student")
	}
	if student == nil {
		return response.NotFound(c, "Student not found")
	}
	return response.Success(c, student)
}

// Create adds a student and its login account.
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var req services.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	student, err := h.studentService.Create(c.Context(), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to create student")
	}
	return response.Created(c, student)
}

// Update edits a student and syncs its login account.
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid student id")
	}
	var req services.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	student, err := h.studentService.Update(c.Context(), uint(id), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to update student")
	}
	if student == nil {
		return response.NotFound(c, "Student not found")
	}
	return response.Success(c, student)
}

// Delete removes a student with its enrollments, grades and login account.
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid student id")
	}
	found, err := h.studentService.Delete(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete student")
	}
	if !found {
		return response.NotFound(c, "Student not found")
	}
	return response.SuccessWithMessage(c, "Student deleted", nil)
}
