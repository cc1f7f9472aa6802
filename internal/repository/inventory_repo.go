package repository

import (
	"github.com/Towaiji/InventoryPro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(item *model.InventoryItem) error
	FindByID(id uuid.UUID) (*model.InventoryItem, error)
	FindByStore(storeID uuid.UUID) ([]model.InventoryItem, error)
	FindByStores(storeIDs []uuid.UUID) ([]model.InventoryItem, error)
	FindOwned(id, userID uuid.UUID) (*model.InventoryItem, error)
	Update(item *model.InventoryItem) error
	DeleteOwned(id, userID uuid.UUID) (int64, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) Create(item *model.InventoryItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return err
	}
	// Reload with the category joined so the response can be denormalized.
	return r.db.Preload("Category").First(item, "id = ?", item.ID).Error
}

func (r *inventoryRepo) FindByID(id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := r.db.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) FindByStore(storeID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Category").
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepo) FindByStores(storeIDs []uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Category").
		Where("store_id IN ?", storeIDs).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// FindOwned fetches the item only when its owning store belongs to userID,
// verified in a single joined query.
func (r *inventoryRepo) FindOwned(id, userID uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.Preload("Category").
		Joins("JOIN stores ON stores.id = inventory.store_id AND stores.deleted_at IS NULL").
		Where("inventory.id = ? AND stores.user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) Update(item *model.InventoryItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return err
	}
	return r.db.Preload("Category").First(item, "id = ?", item.ID).Error
}

// DeleteOwned deletes in one statement, with ownership pushed into the
// store_id subquery. Zero rows affected means not found or not owned.
func (r *inventoryRepo) DeleteOwned(id, userID uuid.UUID) (int64, error) {
	ownedStores := r.db.Model(&model.Store{}).Select("id").Where("user_id = ?", userID)
	res := r.db.Where("id = ? AND store_id IN (?)", id, ownedStores).Delete(&model.InventoryItem{})
	return res.RowsAffected, res.Error
}
