// Package controllers holds the HTTP handlers. Each handler serves both the
// GET (render form) and POST (process submission) side of its route; failed
// submissions re-render the page with field errors and the visitor's input.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/logger"
	"github.com/grocerly/grocerly/pkg/router"
	"github.com/grocerly/grocerly/pkg/session"
	"github.com/grocerly/grocerly/pkg/view"
)

// base is embedded by every controller: rendering, flash handling, and the
// current-user lookup.
type base struct {
	views  *view.Renderer
	auth   *auth.Manager
	users  *repositories.UserRepository
	routes *router.Router
}

// url builds a path from a named route, falling back to the home page when
// the name or its parameters are wrong (a programming error, logged loudly).
func (b *base) url(name string, params map[string]string) string {
	u, err := b.routes.URL(name, params)
	if err != nil {
		logger.Error("build route URL", "name", name, "error", err)
		return "/"
	}
	return u
}

// render serves a page, adding the keys every template expects: CurrentUser
// and the pending flash notices.
func (b *base) render(w http.ResponseWriter, r *http.Request, status int, page string, data view.Data) {
	if data == nil {
		data = view.Data{}
	}
	data["CurrentUser"] = b.currentUser(r)
	data["Flashes"] = session.FromCtx(r).PopFlashes(w)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	b.views.Render(w, status, page, data)
}

// currentUser resolves the session's user ID to a full record, or nil for
// anonymous visitors. A stale session pointing at a deleted user counts as
// anonymous.
func (b *base) currentUser(r *http.Request) *models.User {
	id, ok := b.auth.UserID(r)
	if !ok {
		return nil
	}
	user, err := b.users.Find(id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("resolve current user", "user_id", id, "error", err)
		return nil
	}
	return user
}

// flashRedirect queues a notice and sends the visitor to target.
func (b *base) flashRedirect(w http.ResponseWriter, r *http.Request, msg, target string) {
	sess := session.FromCtx(r)
	sess.Flash(msg)
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Error("save flash", "error", err)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// serverError logs err and serves the 500 page.
func (b *base) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithCtx(r.Context()).Error("handler failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// urlParamUint reads a chi route parameter as a uint; ok is false for
// missing or non-numeric values.
func urlParamUint(r *http.Request, name string) (uint, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
