package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Towaiji/InventoryPro/internal/service"
)

// currentUserID reads the caller's identity set by the auth middleware.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// respondError maps service errors onto status codes. Sentinel causes keep
// their meaning; everything else is logged and collapsed into a generic
// failure message so backend details never leak to clients.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, service.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		return c.Status(500).JSON(fiber.Map{"error": "Something went wrong"})
	}
}
