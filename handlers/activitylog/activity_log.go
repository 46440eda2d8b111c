package activitylog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/repository"
	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/response"
	"github.com/opencampus/sims-api/utils/validation"
)

// ActivityLogHandler exposes the grade audit trail to admins.
type ActivityLogHandler struct {
	activityLogService *services.ActivityLogService
}

// NewActivityLogHandler creates a new activity log handler.
func NewActivityLogHandler(activityLogService *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{activityLogService: activityLogService}
}

// List returns audit entries filtered by the optional student, course,
// faculty and type query parameters, newest first.
func (h *ActivityLogHandler) List(c *fiber.Ctx) error {
	filter := repository.ActivityLogFilter{
		ActivityType: validation.SanitizeString(c.Query("type")),
	}
	if id := c.QueryInt("student_id"); id > 0 {
		studentID := uint(id)
		filter.StudentID = &studentID
	}
	if id := c.QueryInt("course_id"); id > 0 {
		courseID := uint(id)
		filter.CourseID = &courseID
	}
	if id := c.QueryInt("faculty_id"); id > 0 {
		facultyID := uint(id)
		filter.FacultyID = &facultyID
	}
	entries, err := h.activityLogService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to load activity log")
	}
	return response.Success(c, entries)
}

// ForStudent returns the audit entries touching one student.
func (h *ActivityLogHandler) ForStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid student id")
	}
	entries, err := h.activityLogService.ListForStudent(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to load activity log")
	}
	return response.Success(c, entries)
}
