// Package repositories holds the data-access layer. Each repository wraps an
// injected *gorm.DB; lookups by ID return (nil, nil) when no row exists so
// handlers can render a 404 without unwrapping GORM sentinel errors.
package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/pkg/metrics"
)

// StoreRepository handles database operations for GroceryStore.
type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// All returns every store, oldest first.
func (r *StoreRepository) All() ([]models.GroceryStore, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var stores []models.GroceryStore
	if err := r.db.Order("id asc").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("repositories: list stores: %w", err)
	}
	return stores, nil
}

// Find returns the store with the given ID along with its items, or
// (nil, nil) when it does not exist.
func (r *StoreRepository) Find(id uint) (*models.GroceryStore, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var store models.GroceryStore
	err := r.db.Preload("Items").First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find store %d: %w", id, err)
	}
	return &store, nil
}

// Exists reports whether a store with the given ID exists.
func (r *StoreRepository) Exists(id uint) (bool, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var count int64
	if err := r.db.Model(&models.GroceryStore{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("repositories: store exists %d: %w", id, err)
	}
	return count > 0, nil
}

// Create persists a new store.
func (r *StoreRepository) Create(store *models.GroceryStore) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("repositories: create store: %w", err)
	}
	return nil
}

// Update persists changes to an existing store.
func (r *StoreRepository) Update(store *models.GroceryStore) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	if err := r.db.Save(store).Error; err != nil {
		return fmt.Errorf("repositories: update store %d: %w", store.ID, err)
	}
	return nil
}
