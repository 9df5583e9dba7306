package models

import "time"

// ShoppingListEntry is one row on a user's shopping list.
//
// It is an explicit join model with its own surrogate key rather than a
// composite-key join table: adding the same item twice produces two rows,
// and the list renders one line per row.
type ShoppingListEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index"           json:"user_id"`
	ItemID    uint      `gorm:"not null;index"           json:"item_id"`
	CreatedAt time.Time `json:"created_at"`

	Item *GroceryItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (ShoppingListEntry) TableName() string { return "user_shopping_list" }

// All lists every model for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&GroceryStore{},
		&GroceryItem{},
		&User{},
		&ShoppingListEntry{},
	}
}
