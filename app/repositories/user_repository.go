package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/pkg/metrics"
)

// UserRepository handles database operations for User and the user's
// shopping list.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Find returns the user with the given ID, or (nil, nil) when it does not exist.
func (r *UserRepository) Find(id uint) (*models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find user %d: %w", id, err)
	}
	return &user, nil
}

// FindByUsername looks a user up by username, or (nil, nil) when no such
// account exists.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find user %q: %w", username, err)
	}
	return &user, nil
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("repositories: create user: %w", err)
	}
	return nil
}

// AddToShoppingList appends an item to the user's shopping list.
// Repeated adds produce repeated rows; the list never deduplicates.
func (r *UserRepository) AddToShoppingList(userID, itemID uint) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	entry := models.ShoppingListEntry{UserID: userID, ItemID: itemID}
	if err := r.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("repositories: add item %d to list of user %d: %w", itemID, userID, err)
	}
	return nil
}

// ShoppingList returns the user's shopping-list entries in insertion order,
// each with its item and the item's store preloaded.
func (r *UserRepository) ShoppingList(userID uint) ([]models.ShoppingListEntry, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var entries []models.ShoppingListEntry
	err := r.db.Where("user_id = ?", userID).
		Order("id asc").
		Preload("Item").
		Preload("Item.Store").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("repositories: shopping list of user %d: %w", userID, err)
	}
	return entries, nil
}
