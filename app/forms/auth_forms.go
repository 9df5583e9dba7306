package forms

import (
	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/pkg/auth"
)

// SignUpForm carries the account registration form.
type SignUpForm struct {
	Username string `form:"username" validate:"required,between=3,50"`
	Password string `form:"password" validate:"required,min=6"`
}

// Validate checks that the username is still free. Runs fresh on every
// submission so a race with another signup surfaces here, not as a DB error.
func (f *SignUpForm) Validate(users *repositories.UserRepository) (map[string]string, error) {
	errs := make(map[string]string)

	existing, err := users.FindByUsername(f.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		errs["username"] = "That username is taken. Please choose a different one."
	}

	return errs, nil
}

// LoginForm carries the login form.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Remember bool   `form:"remember"`
}

// Validate resolves the account and checks the password against its hash.
// On success the matched user is returned alongside an empty error map.
func (f *LoginForm) Validate(users *repositories.UserRepository) (*models.User, map[string]string, error) {
	errs := make(map[string]string)

	user, err := users.FindByUsername(f.Username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		errs["username"] = "No account found with that username."
		return nil, errs, nil
	}

	if !auth.CheckPassword(user.Password, f.Password) {
		errs["password"] = "Password is incorrect."
		return nil, errs, nil
	}

	return user, errs, nil
}
