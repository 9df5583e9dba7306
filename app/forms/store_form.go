// Package forms defines the submitted-form types: their field bindings,
// declarative validation rules, and the record-level checks that need a
// repository (username uniqueness, credential match, store existence).
package forms

import "github.com/grocerly/grocerly/app/models"

// StoreForm carries the create/update grocery store form.
type StoreForm struct {
	Title   string `form:"title"   validate:"required,between=3,80"`
	Address string `form:"address" validate:"required,between=5,200"`
}

// Apply copies the form's values onto a store record.
func (f *StoreForm) Apply(store *models.GroceryStore) {
	store.Title = f.Title
	store.Address = f.Address
}

// FromStore pre-fills the form from an existing record for the edit page.
func (f *StoreForm) FromStore(store *models.GroceryStore) {
	f.Title = store.Title
	f.Address = store.Address
}
