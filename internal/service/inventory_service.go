package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Towaiji/InventoryPro/internal/model"
	"github.com/Towaiji/InventoryPro/internal/repository"
	"github.com/Towaiji/InventoryPro/internal/stats"
	"github.com/Towaiji/InventoryPro/internal/ws"
	"github.com/Towaiji/InventoryPro/pkg/validator"
)

type InventoryService interface {
	ListForStore(userID, storeID uuid.UUID) ([]model.InventoryItemResponse, error)
	ListAll(userID uuid.UUID, filter ItemFilter) ([]model.InventoryItemResponse, error)
	CreateItem(userID uuid.UUID, input *ItemInput) (*model.InventoryItemResponse, error)
	UpdateItem(userID, itemID uuid.UUID, input *ItemInput) (*model.InventoryItemResponse, error)
	DeleteItem(userID, itemID uuid.UUID) error
	ListCategories(userID uuid.UUID) ([]string, error)
}

// ItemInput carries the dialog payload: category is the free-text display
// name, resolved to a category row on save.
type ItemInput struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
	SKU      string          `json:"sku"`
	StoreID  uuid.UUID       `json:"store_id"`
}

// ItemFilter narrows ListAll; zero values mean no filtering.
type ItemFilter struct {
	Search  string
	StoreID uuid.UUID
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	storeRepo     repository.StoreRepository
	categoryRepo  repository.CategoryRepository
	scope         model.CategoryScope
	wsHub         *ws.Hub
	log           *logrus.Logger
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
	scope model.CategoryScope,
	hub *ws.Hub,
	log *logrus.Logger,
) InventoryService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		storeRepo:     storeRepo,
		categoryRepo:  categoryRepo,
		scope:         scope,
		wsHub:         hub,
		log:           log,
	}
}

// ownerKey is the category dedup scope: empty string for the shared global
// taxonomy, the caller's id when CATEGORY_SCOPE=user.
func (s *inventoryService) ownerKey(userID uuid.UUID) string {
	if s.scope == model.ScopeUser {
		return userID.String()
	}
	return ""
}

// resolveCategory maps a free-text name to a category id, creating the row on
// first use. An empty name yields a nil id; a resolver failure is logged and
// also yields nil, matching the original behavior of saving the item
// uncategorized rather than failing the whole write.
func (s *inventoryService) resolveCategory(name string, userID uuid.UUID) *uint {
	if name == "" {
		return nil
	}
	id, err := s.categoryRepo.ResolveID(name, s.ownerKey(userID))
	if err != nil {
		s.log.WithError(err).WithField("category", name).Warn("category resolution failed")
		return nil
	}
	return &id
}

func (s *inventoryService) ListForStore(userID, storeID uuid.UUID) ([]model.InventoryItemResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	// Single-row ownership lookup before exposing the store's inventory.
	if _, err := s.storeRepo.FindOwned(storeID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("verify store: %w", err)
	}

	items, err := s.inventoryRepo.FindByStore(storeID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return toResponses(items), nil
}

func (s *inventoryService) ListAll(userID uuid.UUID, filter ItemFilter) ([]model.InventoryItemResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	storeIDs, err := s.storeRepo.IDsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("resolve stores: %w", err)
	}
	// No stores means no inventory; skip the item query entirely.
	if len(storeIDs) == 0 {
		return []model.InventoryItemResponse{}, nil
	}

	items, err := s.inventoryRepo.FindByStores(storeIDs)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	responses := toResponses(items)
	return filterItems(responses, filter), nil
}

func (s *inventoryService) CreateItem(userID uuid.UUID, input *ItemInput) (*model.InventoryItemResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	// Verify the target store belongs to the caller.
	if _, err := s.storeRepo.FindOwned(input.StoreID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("verify store: %w", err)
	}

	item := &model.InventoryItem{
		Name:       input.Name,
		SKU:        input.SKU,
		Quantity:   input.Quantity,
		Price:      input.Price,
		StoreID:    input.StoreID,
		CategoryID: s.resolveCategory(input.Category, userID),
	}

	if err := s.inventoryRepo.Create(item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	resp := item.ToResponse()
	s.broadcastItemEvent("item_created", &resp)
	return &resp, nil
}

func (s *inventoryService) UpdateItem(userID, itemID uuid.UUID, input *ItemInput) (*model.InventoryItemResponse, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	// Ownership verified through the store join in a single query.
	existing, err := s.inventoryRepo.FindOwned(itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch item: %w", err)
	}

	// Re-resolve the category only when the supplied name differs from the
	// item's current one.
	if input.Category != existing.CategoryName() {
		existing.CategoryID = s.resolveCategory(input.Category, userID)
		existing.Category = nil
	}

	existing.Name = input.Name
	existing.SKU = input.SKU
	existing.Quantity = input.Quantity
	existing.Price = input.Price

	if err := s.inventoryRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	resp := existing.ToResponse()
	s.broadcastItemEvent("item_updated", &resp)
	return &resp, nil
}

func (s *inventoryService) DeleteItem(userID, itemID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}

	affected, err := s.inventoryRepo.DeleteOwned(itemID, userID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.broadcastEvent(map[string]interface{}{
		"type":    "stock_update",
		"action":  "item_deleted",
		"item_id": itemID,
	})
	return nil
}

func (s *inventoryService) ListCategories(userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	names, err := s.categoryRepo.ListNames(s.ownerKey(userID))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return names, nil
}

// broadcastItemEvent pushes a stock_update event to connected clients, with a
// low_stock_alert piggybacked when the save left the item under threshold.
func (s *inventoryService) broadcastItemEvent(action string, item *model.InventoryItemResponse) {
	payload := map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"item": map[string]interface{}{
			"id":       item.ID,
			"name":     item.Name,
			"sku":      item.SKU,
			"quantity": item.Quantity,
			"category": item.Category,
			"store_id": item.StoreID,
		},
	}
	s.broadcastEvent(payload)

	if item.Quantity < stats.LowStockThreshold {
		s.broadcastEvent(map[string]interface{}{
			"type":     "low_stock_alert",
			"item_id":  item.ID,
			"name":     item.Name,
			"quantity": item.Quantity,
		})
	}
}

func (s *inventoryService) broadcastEvent(payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	go func() {
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

func toResponses(items []model.InventoryItem) []model.InventoryItemResponse {
	responses := make([]model.InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = items[i].ToResponse()
	}
	return responses
}

func filterItems(items []model.InventoryItemResponse, filter ItemFilter) []model.InventoryItemResponse {
	if filter.Search == "" && filter.StoreID == uuid.Nil {
		return items
	}
	query := strings.ToLower(filter.Search)
	filtered := make([]model.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		if filter.StoreID != uuid.Nil && item.StoreID != filter.StoreID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.SKU), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
