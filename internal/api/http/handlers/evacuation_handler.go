package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-alert-service/internal/api/dto"
	"github.com/spec-kit/campus-alert-service/internal/domain"
	"github.com/spec-kit/campus-alert-service/internal/service"
	apperrors "github.com/spec-kit/campus-alert-service/pkg/util/errorutil"
)

// EvacuationHandler exposes the emergency trigger endpoints.
type EvacuationHandler struct {
	broadcasts *service.BroadcastService
}

// NewEvacuationHandler constructs handler.
func NewEvacuationHandler(broadcasts *service.BroadcastService) *EvacuationHandler {
	return &EvacuationHandler{broadcasts: broadcasts}
}

// Status handles GET /api/evacuation/:category, reporting readiness of
// a trigger without firing it.
func (h *EvacuationHandler) Status(c *fiber.Ctx) error {
	category, err := domain.ParseCategory(c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"category": category.String(),
			"message":  category.Message(),
			"status":   "ready",
		},
	})
}

// Trigger handles POST /api/evacuation/:category. The body may carry a
// "level" priority override.
func (h *EvacuationHandler) Trigger(c *fiber.Ctx) error {
	category, err := domain.ParseCategory(c.Params("category"))
	if err != nil {
		return err
	}

	var req dto.EvacuationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	result, err := h.broadcasts.Evacuate(c.Context(), category, req.Level)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.BroadcastResponse{
			Status:     "evacuation triggered",
			Category:   category.String(),
			Message:    result.Message,
			Priority:   result.Priority.String(),
			Recipients: result.Recipients,
		},
	})
}

// Announce handles POST /api/broadcast (admin free-text).
func (h *EvacuationHandler) Announce(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.broadcasts.Announce(c.Context(), req.Message, req.Level)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.BroadcastResponse{
			Status:     "broadcast sent",
			Message:    result.Message,
			Priority:   result.Priority.String(),
			Recipients: result.Recipients,
		},
	})
}

// SendDirect handles POST /api/notifications (admin single path).
func (h *EvacuationHandler) SendDirect(c *fiber.Ctx) error {
	var req dto.DirectNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	notification, err := h.broadcasts.SendDirect(c.Context(), req.RecipientID, req.Message, req.Level)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewNotificationResponse(*notification)})
}
