// Package routes wires every page onto the router.
package routes

import (
	"github.com/grocerly/grocerly/app/controllers"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/router"
)

// Controllers bundles the handlers Register mounts.
type Controllers struct {
	Stores   *controllers.StoreController
	Items    *controllers.ItemController
	Shopping *controllers.ShoppingController
	Auth     *controllers.AuthController
}

// Register mounts the web routes. Form pages serve GET and POST through the
// same handler; creation and shopping-list pages require a signed-in user,
// while detail (and edit) pages stay public.
func Register(r *router.Router, am *auth.Manager, c Controllers) {
	guard := router.Middleware(am.RequireLogin)
	guest := router.Middleware(am.RedirectIfAuthenticated)

	r.Get("/", "home", c.Stores.Home)

	r.Get("/new_store", "new_store", c.Stores.New, guard)
	r.Post("/new_store", "", c.Stores.New, guard)

	r.Get("/new_item", "new_item", c.Items.New, guard)
	r.Post("/new_item", "", c.Items.New, guard)

	r.Get("/store/{store_id}", "store_detail", c.Stores.Detail)
	r.Post("/store/{store_id}", "", c.Stores.Detail)

	r.Get("/item/{item_id}", "item_detail", c.Items.Detail)
	r.Post("/item/{item_id}", "", c.Items.Detail)

	r.Post("/add_to_shopping_list/{item_id}", "add_to_shopping_list", c.Shopping.Add, guard)
	r.Get("/shopping_list", "shopping_list", c.Shopping.List, guard)

	r.Get("/signup", "signup", c.Auth.SignUp, guest)
	r.Post("/signup", "", c.Auth.SignUp, guest)

	r.Get("/login", "login", c.Auth.Login, guest)
	r.Post("/login", "", c.Auth.Login, guest)

	r.Get("/logout", "logout", c.Auth.Logout, guard)
}
