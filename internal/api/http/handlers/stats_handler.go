package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campus-alert-service/internal/api/dto"
	"github.com/spec-kit/campus-alert-service/internal/service"
)

// StatsHandler exposes the aggregate reporting endpoint.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: statsService}
}

// Aggregate handles GET /api/stats (admin only). Every call recomputes
// from current storage state.
func (h *StatsHandler) Aggregate(c *fiber.Ctx) error {
	stats, err := h.stats.Aggregate(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatsResponse(stats)})
}
