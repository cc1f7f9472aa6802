package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Towaiji/InventoryPro/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logrus.Logger
}

func NewDashboardHandler(s service.DashboardService, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, log: log}
}

// GetStats returns the global dashboard numbers
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	summary, err := h.service.GetSummary(currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// GetStoreStats returns per-store rollups
// GET /api/v1/dashboard/stores
func (h *DashboardHandler) GetStoreStats(c *fiber.Ctx) error {
	rollups, err := h.service.GetStoreRollups(currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(rollups)
}

// GetCategoryStats returns per-category rollups with percentages
// GET /api/v1/dashboard/categories
func (h *DashboardHandler) GetCategoryStats(c *fiber.Ctx) error {
	rollups, err := h.service.GetCategoryRollups(currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(rollups)
}

// GetLowStock returns the items under the fixed threshold
// GET /api/v1/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	items, err := h.service.GetLowStock(currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(items)
}
