package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Towaiji/InventoryPro/internal/model"
	"github.com/Towaiji/InventoryPro/internal/repository"
	"github.com/Towaiji/InventoryPro/pkg/validator"
)

type StoreService interface {
	ListStores(userID uuid.UUID) ([]model.Store, error)
	CreateStore(userID uuid.UUID, req *model.Store) (*model.Store, error)
	UpdateStore(userID, storeID uuid.UUID, req *model.Store) (*model.Store, error)
	DeleteStore(userID, storeID uuid.UUID) error
}

type storeService struct {
	storeRepo repository.StoreRepository
}

func NewStoreService(storeRepo repository.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

// ListStores returns the caller's stores, newest first.
func (s *storeService) ListStores(userID uuid.UUID) ([]model.Store, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}
	stores, err := s.storeRepo.FindAllByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// CreateStore inserts a store stamped with the caller's id.
func (s *storeService) CreateStore(userID uuid.UUID, req *model.Store) (*model.Store, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	req.UserID = userID
	if err := s.storeRepo.Create(req); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return req, nil
}

func (s *storeService) UpdateStore(userID, storeID uuid.UUID, req *model.Store) (*model.Store, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	existing, err := s.storeRepo.FindOwned(storeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch store: %w", err)
	}

	existing.Name = req.Name
	existing.Location = req.Location
	existing.Manager = req.Manager
	existing.Contact = req.Contact

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	if err := s.storeRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	return existing, nil
}

func (s *storeService) DeleteStore(userID, storeID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrNotAuthenticated
	}

	affected, err := s.storeRepo.DeleteOwned(storeID, userID)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
