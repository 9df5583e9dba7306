package controllers

import (
	"net/http"

	"github.com/grocerly/grocerly/app/forms"
	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/bind"
	"github.com/grocerly/grocerly/pkg/router"
	"github.com/grocerly/grocerly/pkg/view"
)

// AuthController serves signup, login, and logout.
type AuthController struct {
	base
}

func NewAuthController(views *view.Renderer, am *auth.Manager, rt *router.Router,
	users *repositories.UserRepository) *AuthController {
	return &AuthController{
		base: base{views: views, auth: am, users: users, routes: rt},
	}
}

// SignUp serves the registration form and creates the account.
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	form := &forms.SignUpForm{}

	if r.Method == http.MethodGet {
		c.render(w, r, http.StatusOK, "signup.html", view.Data{"Form": form})
		return
	}

	errs, err := bind.Form(r, form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	if len(errs) == 0 {
		recordErrs, err := form.Validate(c.users)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
		errs = recordErrs
	}
	if len(errs) > 0 {
		c.render(w, r, http.StatusUnprocessableEntity, "signup.html", view.Data{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		c.serverError(w, r, err)
		return
	}

	user := &models.User{Username: form.Username, Password: hash}
	if err := c.users.Create(user); err != nil {
		c.serverError(w, r, err)
		return
	}

	c.flashRedirect(w, r, "Account Created! You can now log in.", c.auth.LoginPath)
}

// Login serves the login form and establishes the session. A ?next= query
// parameter set by the login guard sends the user back where they started.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	form := &forms.LoginForm{}

	if r.Method == http.MethodGet {
		c.render(w, r, http.StatusOK, "login.html", view.Data{
			"Form": form,
			"Next": r.URL.Query().Get(c.auth.NextParam),
		})
		return
	}

	errs, err := bind.Form(r, form)
	if err != nil {
		c.serverError(w, r, err)
		return
	}

	var user *models.User
	if len(errs) == 0 {
		user, errs, err = form.Validate(c.users)
		if err != nil {
			c.serverError(w, r, err)
			return
		}
	}

	if len(errs) > 0 || user == nil {
		c.render(w, r, http.StatusUnprocessableEntity, "login.html", view.Data{
			"Form":   form,
			"Errors": errs,
			"Next":   r.FormValue(c.auth.NextParam),
		})
		return
	}

	if err := c.auth.Login(w, r, user.ID, form.Remember); err != nil {
		c.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, c.auth.SafeNext(r.FormValue(c.auth.NextParam)), http.StatusFound)
}

// Logout clears the session and returns to the home page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.auth.Logout(w, r); err != nil {
		c.serverError(w, r, err)
		return
	}
	c.flashRedirect(w, r, "You have been logged out.", c.auth.HomePath)
}
