package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Towaiji/InventoryPro/internal/service"
)

type InventoryHandler struct {
	service service.InventoryService
	log     *logrus.Logger
}

func NewInventoryHandler(s service.InventoryService, log *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{service: s, log: log}
}

// GetInventory lists every item across the caller's stores
// GET /api/v1/inventory?search=&store=
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	filter := service.ItemFilter{Search: c.Query("search")}
	if storeParam := c.Query("store"); storeParam != "" {
		storeID, err := uuid.Parse(storeParam)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid store filter"})
		}
		filter.StoreID = storeID
	}

	items, err := h.service.ListAll(currentUserID(c), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(items)
}

// CreateItem adds an item to one of the caller's stores
// POST /api/v1/inventory
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var input service.ItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.CreateItem(currentUserID(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

// UpdateItem updates an item the caller transitively owns
// PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var input service.ItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.UpdateItem(currentUserID(c), itemID, &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": item})
}

// DeleteItem removes an item the caller transitively owns
// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(currentUserID(c), itemID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

// GetCategories lists category names for the save dialog, alphabetically
// GET /api/v1/categories
func (h *InventoryHandler) GetCategories(c *fiber.Ctx) error {
	names, err := h.service.ListCategories(currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(names)
}
