package handler

import (
	"strconv"

	"go-pos-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
// Query params: days (default 30)
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}

	stats, err := h.service.GetDashboardStats(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"stats":  stats,
	})
}
