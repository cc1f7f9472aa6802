package repository

import (
	"github.com/Towaiji/InventoryPro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	FindAllByUser(userID uuid.UUID) ([]model.Store, error)
	FindOwned(id, userID uuid.UUID) (*model.Store, error)
	IDsByUser(userID uuid.UUID) ([]uuid.UUID, error)
	Update(store *model.Store) error
	DeleteOwned(id, userID uuid.UUID) (int64, error)
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db}
}

func (r *storeRepo) Create(store *model.Store) error {
	return r.db.Create(store).Error
}

func (r *storeRepo) FindAllByUser(userID uuid.UUID) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&stores).Error
	return stores, err
}

// FindOwned is the single-row ownership lookup used before store-scoped reads.
func (r *storeRepo) FindOwned(id, userID uuid.UUID) (*model.Store, error) {
	var store model.Store
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) IDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&model.Store{}).Where("user_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

func (r *storeRepo) Update(store *model.Store) error {
	return r.db.Save(store).Error
}

// DeleteOwned deletes the store only when the owner matches, in one statement.
// Returns the number of rows affected so callers can tell not-found apart
// from a successful delete.
func (r *storeRepo) DeleteOwned(id, userID uuid.UUID) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Store{})
	return res.RowsAffected, res.Error
}
