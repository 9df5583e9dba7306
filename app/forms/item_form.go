package forms

import (
	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
)

// ItemForm carries the create/update grocery item form.
type ItemForm struct {
	Name     string  `form:"name"      validate:"required,between=1,80"`
	Price    float64 `form:"price"     validate:"required,gte=0.01"`
	Category string  `form:"category"  validate:"required,in=Produce,Deli,Bakery,Pantry,Frozen,Other"`
	PhotoURL string  `form:"photo_url" validate:"required,url"`
	StoreID  uint    `form:"store_id"  validate:"required"`
}

// Validate runs the checks that need the database: the selected store must
// exist. Declarative rules have already run through the binder.
func (f *ItemForm) Validate(stores *repositories.StoreRepository) (map[string]string, error) {
	errs := make(map[string]string)

	ok, err := stores.Exists(f.StoreID)
	if err != nil {
		return nil, err
	}
	if !ok {
		errs["store_id"] = "The selected store does not exist."
	}

	return errs, nil
}

// Apply copies the form's values onto an item record.
func (f *ItemForm) Apply(item *models.GroceryItem) {
	item.Name = f.Name
	item.Price = f.Price
	item.Category = models.ItemCategory(f.Category)
	item.PhotoURL = f.PhotoURL
	item.StoreID = f.StoreID
}

// FromItem pre-fills the form from an existing record for the edit page.
func (f *ItemForm) FromItem(item *models.GroceryItem) {
	f.Name = item.Name
	f.Price = item.Price
	f.Category = string(item.Category)
	f.PhotoURL = item.PhotoURL
	f.StoreID = item.StoreID
}
