package controllers

import (
	"net/http"

	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/router"
	"github.com/grocerly/grocerly/pkg/view"
)

// ShoppingController serves the per-user shopping list.
type ShoppingController struct {
	base
	items *repositories.ItemRepository
}

func NewShoppingController(views *view.Renderer, am *auth.Manager, rt *router.Router,
	items *repositories.ItemRepository, users *repositories.UserRepository) *ShoppingController {
	return &ShoppingController{
		base:  base{views: views, auth: am, users: users, routes: rt},
		items: items,
	}
}

// Add appends an item to the signed-in user's shopping list. Adding the same
// item again adds another row.
func (c *ShoppingController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.auth.UserID(r)
	if !ok {
		// unreachable behind RequireLogin; kept as a guard
		http.Redirect(w, r, c.auth.LoginPath, http.StatusFound)
		return
	}

	itemID, ok := urlParamUint(r, "item_id")
	if !ok {
		c.flashRedirect(w, r, "Item not found.", "/")
		return
	}

	item, err := c.items.Find(itemID)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if item == nil {
		c.flashRedirect(w, r, "Item not found.", "/")
		return
	}

	if err := c.users.AddToShoppingList(userID, item.ID); err != nil {
		c.serverError(w, r, err)
		return
	}

	c.flashRedirect(w, r, "Item successfully added to your shopping list!",
		c.url("shopping_list", nil))
}

// List renders the signed-in user's shopping list.
func (c *ShoppingController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := c.auth.UserID(r)
	if !ok {
		http.Redirect(w, r, c.auth.LoginPath, http.StatusFound)
		return
	}

	entries, err := c.users.ShoppingList(userID)
	if err != nil {
		c.serverError(w, r, err)
		return
	}

	c.render(w, r, http.StatusOK, "shopping_list.html", view.Data{"Entries": entries})
}
