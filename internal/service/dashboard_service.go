package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Towaiji/InventoryPro/internal/model"
	"github.com/Towaiji/InventoryPro/internal/repository"
	"github.com/Towaiji/InventoryPro/internal/stats"
)

type DashboardService interface {
	GetSummary(userID uuid.UUID) (*stats.Summary, error)
	GetStoreRollups(userID uuid.UUID) ([]stats.StoreRollup, error)
	GetCategoryRollups(userID uuid.UUID) ([]stats.CategoryRollup, error)
	GetLowStock(userID uuid.UUID) ([]model.InventoryItemResponse, error)
}

type dashboardService struct {
	storeRepo     repository.StoreRepository
	inventoryRepo repository.InventoryRepository
}

func NewDashboardService(storeRepo repository.StoreRepository, inventoryRepo repository.InventoryRepository) DashboardService {
	return &dashboardService{storeRepo: storeRepo, inventoryRepo: inventoryRepo}
}

// fetch loads the caller's stores and their inventory in two queries; all
// derivation happens in the stats package.
func (s *dashboardService) fetch(userID uuid.UUID) ([]model.Store, []model.InventoryItemResponse, error) {
	if userID == uuid.Nil {
		return nil, nil, ErrNotAuthenticated
	}

	stores, err := s.storeRepo.FindAllByUser(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list stores: %w", err)
	}
	if len(stores) == 0 {
		return stores, []model.InventoryItemResponse{}, nil
	}

	ids := make([]uuid.UUID, len(stores))
	for i, store := range stores {
		ids[i] = store.ID
	}

	items, err := s.inventoryRepo.FindByStores(ids)
	if err != nil {
		return nil, nil, fmt.Errorf("list inventory: %w", err)
	}
	return stores, toResponses(items), nil
}

func (s *dashboardService) GetSummary(userID uuid.UUID) (*stats.Summary, error) {
	_, items, err := s.fetch(userID)
	if err != nil {
		return nil, err
	}
	summary := stats.Summarize(items)
	return &summary, nil
}

func (s *dashboardService) GetStoreRollups(userID uuid.UUID) ([]stats.StoreRollup, error) {
	stores, items, err := s.fetch(userID)
	if err != nil {
		return nil, err
	}
	return stats.ByStore(stores, items), nil
}

func (s *dashboardService) GetCategoryRollups(userID uuid.UUID) ([]stats.CategoryRollup, error) {
	_, items, err := s.fetch(userID)
	if err != nil {
		return nil, err
	}
	return stats.ByCategory(items), nil
}

func (s *dashboardService) GetLowStock(userID uuid.UUID) ([]model.InventoryItemResponse, error) {
	_, items, err := s.fetch(userID)
	if err != nil {
		return nil, err
	}
	return stats.LowStock(items), nil
}
