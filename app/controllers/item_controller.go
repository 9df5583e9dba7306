package controllers

import (
	"fmt"
	"net/http"

	"github.com/grocerly/grocerly/app/forms"
	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/bind"
	"github.com/grocerly/grocerly/pkg/router"
	"github.com/grocerly/grocerly/pkg/view"
)

// ItemController serves the item creation and detail pages.
type ItemController struct {
	base
	items  *repositories.ItemRepository
	stores *repositories.StoreRepository
}

func NewItemController(views *view.Renderer, am *auth.Manager, rt *router.Router,
	items *repositories.ItemRepository, stores *repositories.StoreRepository,
	users *repositories.UserRepository) *ItemController {
	return &ItemController{
		base:   base{views: views, auth: am, users: users, routes: rt},
		items:  items,
		stores: stores,
	}
}

// formData assembles the template payload shared by both item pages: the
// bound form, its errors, and the store choices for the select box.
func (c *ItemController) formData(form *forms.ItemForm, errs map[string]string) (view.Data, error) {
	stores, err := c.stores.All()
	if err != nil {
		return nil, err
	}
	return view.Data{
		"Form":       form,
		"Errors":     errs,
		"Stores":     stores,
		"Categories": models.Categories(),
	}, nil
}

// New serves the create-item form and processes its submission.
func (c *ItemController) New(w http.ResponseWriter, r *http.Request) {
	form := &forms.ItemForm{}

	if r.Method == http.MethodGet {
		data, err := c.formData(form, nil)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		c.render(w, r, http.StatusOK, "new_item.html", data)
		return
	}

	errs, err := bind.Form(r, form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if len(errs) == 0 {
		recordErrs, err := form.Validate(c.stores)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		errs = recordErrs
	}
	if len(errs) > 0 {
		data, err := c.formData(form, errs)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		c.render(w, r, http.StatusUnprocessableEntity, "new_item.html", data)
		return
	}

	item := &models.GroceryItem{}
	form.Apply(item)
	if err := c.items.Create(item); err != nil {
		c.serverError(w, r, err)
		return
	}

	c.flashRedirect(w, r, "New item was added successfully.",
		c.url("item_detail", map[string]string{"item_id": fmt.Sprint(item.ID)}))
}

// Detail shows one item with an edit form; POST applies the edit and
// redirects back here.
func (c *ItemController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamUint(r, "item_id")
	if !ok {
		c.flashRedirect(w, r, "Error retrieving item.", "/")
		return
	}

	item, err := c.items.Find(id)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if item == nil {
		c.flashRedirect(w, r, "Error retrieving item.", "/")
		return
	}

	form := &forms.ItemForm{}

	if r.Method == http.MethodGet {
		form.FromItem(item)
		data, err := c.formData(form, nil)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		data["Item"] = item
		c.render(w, r, http.StatusOK, "item_detail.html", data)
		return
	}

	errs, err := bind.Form(r, form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if len(errs) == 0 {
		recordErrs, err := form.Validate(c.stores)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		errs = recordErrs
	}
	if len(errs) > 0 {
		data, err := c.formData(form, errs)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		data["Item"] = item
		c.render(w, r, http.StatusUnprocessableEntity, "item_detail.html", data)
		return
	}

	form.Apply(item)
	if err := c.items.Update(item); err != nil {
		c.serverError(w, r, err)
		return
	}

	c.flashRedirect(w, r, "Item was updated successfully.",
		c.url("item_detail", map[string]string{"item_id": fmt.Sprint(item.ID)}))
}
