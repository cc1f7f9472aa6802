package model

// Category is a de-duplicated label attached to inventory items.
// Rows are created lazily on first use and never deleted.
//
// OwnerID is the empty string when categories are shared globally
// (the default policy) or the owning user's id when CATEGORY_SCOPE=user.
// The composite unique index makes the insert itself the dedup source
// of truth, so concurrent resolutions of a new name yield one row.
type Category struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_category_name_owner" json:"name"`
	OwnerID string `gorm:"type:varchar(36);not null;default:'';uniqueIndex:idx_category_name_owner" json:"-"`
}

// CategoryScope selects how category names are deduplicated.
type CategoryScope string

const (
	// ScopeGlobal shares one taxonomy across all users.
	ScopeGlobal CategoryScope = "global"
	// ScopeUser deduplicates names per owning user.
	ScopeUser CategoryScope = "user"
)

// Uncategorized is the display name for items without a category row.
const Uncategorized = "Uncategorized"
