package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-alert-service/internal/api/dto"
	"github.com/spec-kit/campus-alert-service/internal/auth"
	"github.com/spec-kit/campus-alert-service/internal/service"
	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// NotificationsHandler serves the personal feed.
type NotificationsHandler struct {
	feed *service.FeedService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(feedService *service.FeedService) *NotificationsHandler {
	return &NotificationsHandler{feed: feedService}
}

// List handles GET /api/notifications, newest first.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	notifications, err := h.feed.List(c.Context(), principal.Account.ID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNotificationResponses(notifications)})
}

// Dashboard handles GET /api/dashboard, the per-account summary.
func (h *NotificationsHandler) Dashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	summary, err := h.feed.Summary(c.Context(), principal.Account.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"account": dto.NewAccountResponse(principal.Account),
			"summary": dto.FeedSummaryResponse{
				Total:        summary.Total,
				Last24h:      summary.Last24h,
				HighPriority: summary.HighPriority,
			},
		},
	})
}
