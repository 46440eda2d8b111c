package course

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// CourseHandler handles the admin course CRUD endpoints.
type CourseHandler struct {
	courseService *services.CourseService
	validator     *validation.Validator
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		validator:     validation.NewValidator(),
	}
}

// List returns all courses, filtered by the optional ?search= query.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	search := validation.SanitizeString(c.Query("search"))
	courses, err := h.courseService.List(c.Context(), search)
	if err != nil {
		return response.InternalServerError(c, "Failed to list courses")
	}
	return response.Success(c, courses)
}

// Get returns one course by id.
func (h *CourseHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}
	course, err := h.courseService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to load course")
	}
	if course == nil {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, course)
}

// Create adds a course.
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req services.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	course, err := h.courseService.Create(c.Context(), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to create course")
	}
	return response.Created(c, course)
}

// Update edits a course.
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}
	var req services.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}
	course, err := h.courseService.Update(c.Context(), uint(id), req)
	if err != nil {
		var conflict *services.ConflictError
		if errors.As(err, &conflict) {
			return response.Conflict(c, conflict.Message)
		}
		return response.InternalServerError(c, "Failed to update course")
	}
	if course == nil {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, course)
}

// DeletionImpact reports how many enrollments and grades deleting the course
// would remove, for confirmation dialogs.
func (h *CourseHandler) DeletionImpact(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}
	impact, err := h.courseService.GetDeletionImpact(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to compute deletion impact")
	}
	if impact == nil {
		return response.NotFound(c, "Course not found")
	}
	return response.Success(c, impact)
}

// Delete removes a course and everything enrolled in it.
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid course id")
	}
	found, err := h.courseService.Delete(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete course")
	}
	if !found {
		return response.NotFound(c, "Course not found")
	}
	return response.SuccessWithMessage(c, "Course deleted", nil)
}
