package model

import "github.com/google/uuid"

// Store represents a physical location owned by a single user.
// Every inventory item belongs to exactly one store.
type Store struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Location string `gorm:"type:varchar(255)" json:"location"`
	Manager  string `gorm:"type:varchar(255)" json:"manager"`
	Contact  string `gorm:"type:varchar(255)" json:"contact"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Items []InventoryItem `gorm:"foreignKey:StoreID" json:"items,omitempty"`
}
