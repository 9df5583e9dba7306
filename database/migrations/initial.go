package migrations

import (
	"gorm.io/gorm"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_grocery_stores_table", &CreateGroceryStoresTable{})
	migration.Register("20260301000001_create_grocery_items_table", &CreateGroceryItemsTable{})
	migration.Register("20260301000002_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000003_create_user_shopping_list_table", &CreateUserShoppingListTable{})
}

// -------- 0001: grocery_stores --------

type CreateGroceryStoresTable struct{}

func (m *CreateGroceryStoresTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.GroceryStore{})
}

func (m *CreateGroceryStoresTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("grocery_stores")
}

// -------- 0002: grocery_items --------

type CreateGroceryItemsTable struct{}

func (m *CreateGroceryItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.GroceryItem{})
}

func (m *CreateGroceryItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("grocery_items")
}

// -------- 0003: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0004: user_shopping_list --------

type CreateUserShoppingListTable struct{}

func (m *CreateUserShoppingListTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.ShoppingListEntry{})
}

func (m *CreateUserShoppingListTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("user_shopping_list")
}
