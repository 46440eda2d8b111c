package notification

import (
	"github.com/gofiber/fiber/v2"

	"github.com/opencampus/sims-api/services"
	"github.com/opencampus/sims-api/utils/middleware"
	"github.com/opencampus/sims-api/utils/response"
)

// NotificationHandler serves the in-app notification endpoints.
type NotificationHandler struct {
	notificationService *services.NotificationService
	authService         *services.AuthService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService *services.NotificationService, authService *services.AuthService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		authService:         authService,
	}
}

func (h *NotificationHandler) identity(c *fiber.Ctx) (*services.AuthenticatedUser, error) {
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

// List returns the current user's notifications. ?unread=true narrows to
// unread ones.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	identity, errResp := h.identity(c)
	if errResp != nil {
		return errResp
	}
	unreadOnly := c.QueryBool("unread")
	notifications, err := h.notificationService.ListForRecipient(c.Context(), identity.Role, identity.IdentityID, unreadOnly)
	if err != nil {
		return response.InternalServerError(c, "Failed to load notifications")
	}
	return response.Success(c, notifications)
}

// MarkRead marks one of the current user's notifications as read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid notification id")
	}
	identity, errResp := h.identity(c)
	if errResp != nil {
		return errResp
	}
	ok, err := h.notificationService.MarkRead(c.Context(), uint(id), identity.Role, identity.IdentityID)
	if err != nil {
		return response.InternalServerError(c, "Failed to mark notification read")
	}
	if !ok {
		return response.NotFound(c, "Notification not found")
	}
	return response.SuccessWithMessage(c, "Notification marked read", nil)
}
