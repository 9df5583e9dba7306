package auth

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grocerly/grocerly/pkg/session"
)

// sessionUserKey is the session key holding the authenticated user's ID.
const sessionUserKey = "user_id"

// Manager tracks the current user across requests through the session, and
// provides the guards that protect authenticated routes.
//
// It deliberately knows nothing about the User model — it deals in user IDs
// only, and handlers resolve the full record through their repository.
type Manager struct {
	// LoginPath is where unauthenticated requests are redirected.
	LoginPath string
	// HomePath is where already-authenticated visitors to login/signup go.
	HomePath string
	// NextParam carries the originally requested URL through the login flow.
	NextParam string
	// RememberCookie names the long-lived remember-me cookie.
	RememberCookie string
	// RememberTTL is the remember-me cookie lifetime.
	RememberTTL time.Duration
}

// NewManager returns a Manager with the application defaults.
func NewManager() *Manager {
	return &Manager{
		LoginPath:      "/login",
		HomePath:       "/",
		NextParam:      "next",
		RememberCookie: "grocerly_remember",
		RememberTTL:    30 * 24 * time.Hour,
	}
}

// Login marks the session as belonging to userID. With remember set, a
// signed long-lived cookie is issued so the session can be revived after
// the session cookie expires.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uint, remember bool) error {
	sess := session.FromCtx(r)
	sess.Set(sessionUserKey, userID)
	if err := sess.Save(w); err != nil {
		return err
	}

	if remember {
		token, err := GenerateRememberToken(userID, m.RememberTTL)
		if err != nil {
			return err
		}
		http.SetCookie(w, &http.Cookie{
			Name:     m.RememberCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.RememberTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return nil
}

// Logout clears the session and expires the remember cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess := session.FromCtx(r)
	sess.Invalidate()
	if err := sess.Save(w); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.RememberCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}

// UserID returns the authenticated user's ID, or ok=false for anonymous
// requests.
func (m *Manager) UserID(r *http.Request) (uint, bool) {
	id, ok := session.FromCtx(r).GetUint(sessionUserKey)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// RequireLogin guards a handler: unauthenticated requests are redirected to
// the login page with the originally requested URL preserved in the next
// parameter, so a successful login returns the user where they started.
func (m *Manager) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.UserID(r); !ok {
			target := m.LoginPath + "?" + m.NextParam + "=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectIfAuthenticated sends already-logged-in users away from the
// signup and login pages.
func (m *Manager) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.UserID(r); ok {
			http.Redirect(w, r, m.HomePath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Remember revives an expired session from a valid remember-me cookie.
// Wire it after the session middleware.
func (m *Manager) Remember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := m.UserID(r); !ok {
			if cookie, err := r.Cookie(m.RememberCookie); err == nil {
				if userID, err := ParseRememberToken(cookie.Value); err == nil {
					sess := session.FromCtx(r)
					sess.Set(sessionUserKey, userID)
					_ = sess.Save(w)
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SafeNext returns raw when it is a safe in-site redirect target, otherwise
// the home path. Blocks absolute URLs and protocol-relative ("//") targets.
func (m *Manager) SafeNext(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return m.HomePath
	}
	return raw
}
