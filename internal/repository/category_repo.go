package repository

import (
	"github.com/Towaiji/InventoryPro/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository interface {
	ResolveID(name, ownerID string) (uint, error)
	FindByID(id uint) (*model.Category, error)
	ListNames(ownerID string) ([]string, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

// ResolveID returns the id of the category with the given name, creating the
// row if it does not exist yet. The insert goes through ON CONFLICT DO NOTHING
// against the (name, owner_id) unique index, so two concurrent resolutions of
// a brand-new name still end up with a single row.
func (r *categoryRepo) ResolveID(name, ownerID string) (uint, error) {
	category := model.Category{Name: name, OwnerID: ownerID}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "owner_id"}},
		DoNothing: true,
	}).Create(&category).Error
	if err != nil {
		return 0, err
	}

	// On conflict the insert assigns no id; fetch the winning row.
	if category.ID == 0 {
		if err := r.db.Where("name = ? AND owner_id = ?", name, ownerID).First(&category).Error; err != nil {
			return 0, err
		}
	}
	return category.ID, nil
}

func (r *categoryRepo) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) ListNames(ownerID string) ([]string, error) {
	var names []string
	err := r.db.Model(&model.Category{}).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Pluck("name", &names).Error
	return names, err
}
