package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Towaiji/InventoryPro/internal/model"
	"github.com/Towaiji/InventoryPro/internal/service"
)

type StoreHandler struct {
	storeService     service.StoreService
	inventoryService service.InventoryService
	log              *logrus.Logger
}

func NewStoreHandler(storeService service.StoreService, inventoryService service.InventoryService, log *logrus.Logger) *StoreHandler {
	return &StoreHandler{storeService: storeService, inventoryService: inventoryService, log: log}
}

// GetStores lists the caller's stores, newest first
// GET /api/v1/stores
func (h *StoreHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.storeService.ListStores(currentUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stores)
}

// CreateStore creates a store owned by the caller
// POST /api/v1/stores
func (h *StoreHandler) CreateStore(c *fiber.Ctx) error {
	var store model.Store
	if err := c.BodyParser(&store); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.storeService.CreateStore(currentUserID(c), &store)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Store created", "data": created})
}

// UpdateStore updates a store the caller owns
// PUT /api/v1/stores/:id
func (h *StoreHandler) UpdateStore(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	var store model.Store
	if err := c.BodyParser(&store); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.storeService.UpdateStore(currentUserID(c), storeID, &store)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Store updated", "data": updated})
}

// DeleteStore deletes a store the caller owns
// DELETE /api/v1/stores/:id
func (h *StoreHandler) DeleteStore(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	if err := h.storeService.DeleteStore(currentUserID(c), storeID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Store deleted"})
}

// GetStoreInventory lists a store's items after the ownership check
// GET /api/v1/stores/:id/inventory
func (h *StoreHandler) GetStoreInventory(c *fiber.Ctx) error {
	storeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid store ID"})
	}

	items, err := h.inventoryService.ListForStore(currentUserID(c), storeID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(items)
}
