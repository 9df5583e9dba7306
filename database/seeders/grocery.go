package seeders

import (
	"gorm.io/gorm"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/pkg/auth"
)

func init() {
	Register("stores", SeedStores)
	Register("demo_user", SeedDemoUser)
}

// SeedStores inserts a couple of stores with items so a fresh install has
// something to browse. Skips silently when stores already exist.
func SeedStores(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.GroceryStore{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	stores := []models.GroceryStore{
		{
			Title:   "Corner Greens",
			Address: "12 Maple Street, Springfield",
			Items: []models.GroceryItem{
				{Name: "Bananas", Price: 0.59, Category: models.CategoryProduce, PhotoURL: "https://images.example.com/bananas.jpg"},
				{Name: "Sourdough Loaf", Price: 4.25, Category: models.CategoryBakery, PhotoURL: "https://images.example.com/sourdough.jpg"},
			},
		},
		{
			Title:   "Northside Market",
			Address: "480 Birch Avenue, Springfield",
			Items: []models.GroceryItem{
				{Name: "Smoked Turkey", Price: 7.99, Category: models.CategoryDeli, PhotoURL: "https://images.example.com/turkey.jpg"},
				{Name: "Frozen Peas", Price: 2.10, Category: models.CategoryFrozen, PhotoURL: "https://images.example.com/peas.jpg"},
			},
		},
	}

	return db.Create(&stores).Error
}

// SeedDemoUser creates the demo account (demo / password) if it is missing.
func SeedDemoUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "demo").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	return db.Create(&models.User{Username: "demo", Password: hash}).Error
}
