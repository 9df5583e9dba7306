package models

import "gorm.io/gorm"

// ItemCategory enumerates the shelf categories an item can belong to.
type ItemCategory string

const (
	CategoryProduce ItemCategory = "Produce"
	CategoryDeli    ItemCategory = "Deli"
	CategoryBakery  ItemCategory = "Bakery"
	CategoryPantry  ItemCategory = "Pantry"
	CategoryFrozen  ItemCategory = "Frozen"
	CategoryOther   ItemCategory = "Other"
)

// Categories returns every valid category, in display order.
func Categories() []ItemCategory {
	return []ItemCategory{
		CategoryProduce, CategoryDeli, CategoryBakery,
		CategoryPantry, CategoryFrozen, CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c ItemCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// GroceryItem is a single product stocked by one store.
type GroceryItem struct {
	gorm.Model
	Name     string       `gorm:"size:80;not null"         json:"name"`
	Price    float64      `gorm:"not null"                 json:"price"`
	Category ItemCategory `gorm:"size:20;default:Other"    json:"category"`
	PhotoURL string       `gorm:"size:500;not null"        json:"photo_url"`
	StoreID  uint         `gorm:"not null;index"           json:"store_id"`

	Store *GroceryStore `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}
