package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/pkg/metrics"
)

// ItemRepository handles database operations for GroceryItem.
type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Find returns the item with the given ID along with its store, or
// (nil, nil) when it does not exist.
func (r *ItemRepository) Find(id uint) (*models.GroceryItem, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var item models.GroceryItem
	err := r.db.Preload("Store").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repositories: find item %d: %w", id, err)
	}
	return &item, nil
}

// Create persists a new item.
func (r *ItemRepository) Create(item *models.GroceryItem) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("repositories: create item: %w", err)
	}
	return nil
}

// Update persists changes to an existing item.
func (r *ItemRepository) Update(item *models.GroceryItem) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("repositories: update item %d: %w", item.ID, err)
	}
	return nil
}
