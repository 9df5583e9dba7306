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

// StoreController serves the store listing, creation, and detail pages.
type StoreController struct {
	base
	stores *repositories.StoreRepository
}

func NewStoreController(views *view.Renderer, am *auth.Manager, rt *router.Router,
	stores *repositories.StoreRepository, users *repositories.UserRepository) *StoreController {
	return &StoreController{
		base:   base{views: views, auth: am, users: users, routes: rt},
		stores: stores,
	}
}

// Home lists every store.
func (c *StoreController) Home(w http.ResponseWriter, r *http.Request) {
	stores, err := c.stores.All()
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	c.render(w, r, http.StatusOK, "home.html", view.Data{"Stores": stores})
}

// New serves the create-store form and processes its submission.
func (c *StoreController) New(w http.ResponseWriter, r *http.Request) {
	form := &forms.StoreForm{}

	if r.Method == http.MethodGet {
		c.render(w, r, http.StatusOK, "new_store.html", view.Data{"Form": form})
		return
	}

	errs, err := bind.Form(r, form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if len(errs) > 0 {
		c.render(w, r, http.StatusUnprocessableEntity, "new_store.html", view.Data{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	store := &models.GroceryStore{}
	form.Apply(store)
	if err := c.stores.Create(store); err != nil {
		c.serverError(w, r, err)
		return
	}

	c.flashRedirect(w, r, "New store was added successfully.",
		c.url("store_detail", map[string]string{"store_id": fmt.Sprint(store.ID)}))
}

// Detail shows one store with its items and an edit form; POST applies the
// edit and redirects back here.
func (c *StoreController) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamUint(r, "store_id")
	if !ok {
		c.flashRedirect(w, r, "Store not found.", "/")
		return
	}

	store, err := c.stores.Find(id)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if store == nil {
		c.flashRedirect(w, r, "Store not found.", "/")
		return
	}

	form := &forms.StoreForm{}

	if r.Method == http.MethodGet {
		form.FromStore(store)
		c.render(w, r, http.StatusOK, "store_detail.html", view.Data{
			"Store": store,
			"Form":  form,
		})
		return
	}

	errs, err := bind.Form(r, form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if len(errs) > 0 {
		c.render(w, r, http.StatusUnprocessableEntity, "store_detail.html", view.Data{
			"Store":  store,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	form.Apply(store)
	if err := c.stores.Update(store); err != nil {
		c.serverError(w, r, err)
		return
	}

	c.flashRedirect(w, r, "Store was updated successfully.",
		c.url("store_detail", map[string]string{"store_id": fmt.Sprint(store.ID)}))
}
