package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a trackable stock unit belonging to one store and,
// transitively, to one user.
type InventoryItem struct {
	BaseModel
	Name     string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU      string          `gorm:"type:varchar(50)" json:"sku"`
	Quantity int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`

	CategoryID *uint     `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`

	StoreID uuid.UUID `gorm:"type:uuid;not null;index" json:"store_id" validate:"uuid_required"`
	Store   *Store    `gorm:"foreignKey:StoreID" json:"-"`
}

// TableName specifies the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory"
}

// CategoryName returns the denormalized display name for the item's category.
func (i *InventoryItem) CategoryName() string {
	if i.Category == nil || i.Category.Name == "" {
		return Uncategorized
	}
	return i.Category.Name
}

// InventoryItemResponse for API responses, with the category name joined in
type InventoryItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CategoryID  *uint           `json:"category_id"`
	StoreID     uuid.UUID       `json:"store_id"`
	CreatedAt   time.Time       `json:"created_at"`
	LastUpdated time.Time       `json:"last_updated"`
}

// ToResponse converts InventoryItem to InventoryItemResponse
func (i *InventoryItem) ToResponse() InventoryItemResponse {
	return InventoryItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		SKU:         i.SKU,
		Quantity:    i.Quantity,
		Price:       i.Price,
		Category:    i.CategoryName(),
		CategoryID:  i.CategoryID,
		StoreID:     i.StoreID,
		CreatedAt:   i.CreatedAt,
		LastUpdated: i.UpdatedAt,
	}
}
