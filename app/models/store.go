// Package models defines the persistent entities: grocery stores, the items
// they stock, users, and the shopping-list rows linking users to items.
package models

import "gorm.io/gorm"

// GroceryStore is a physical store carrying grocery items.
type GroceryStore struct {
	gorm.Model
	Title   string `gorm:"size:80;not null"  json:"title"`
	Address string `gorm:"size:200;not null" json:"address"`

	// Items are the store's stocked items, deleted rows excluded by GORM.
	Items []GroceryItem `gorm:"foreignKey:StoreID" json:"items,omitempty"`
}
