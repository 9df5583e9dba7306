package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/grocerly/pkg/session"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash, "password must never be stored in plain text")

	assert.True(t, CheckPassword(hash, "hunter2!"))
	assert.False(t, CheckPassword(hash, "Hunter2!"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestRememberTokenRoundTrip(t *testing.T) {
	token, err := GenerateRememberToken(42, time.Hour)
	require.NoError(t, err)

	userID, err := ParseRememberToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestRememberTokenExpired(t *testing.T) {
	token, err := GenerateRememberToken(42, -time.Minute)
	require.NoError(t, err)

	_, err = ParseRememberToken(token)
	assert.Error(t, err)
}

func TestRememberTokenTampered(t *testing.T) {
	token, err := GenerateRememberToken(42, time.Hour)
	require.NoError(t, err)

	_, err = ParseRememberToken(token + "x")
	assert.Error(t, err)
}

func TestSafeNext(t *testing.T) {
	m := NewManager()

	assert.Equal(t, "/shopping_list", m.SafeNext("/shopping_list"))
	assert.Equal(t, "/new_item?x=1", m.SafeNext("/new_item?x=1"))

	// Off-site and malformed targets fall back to home.
	assert.Equal(t, "/", m.SafeNext(""))
	assert.Equal(t, "/", m.SafeNext("https://evil.example"))
	assert.Equal(t, "/", m.SafeNext("//evil.example"))
	assert.Equal(t, "/", m.SafeNext("javascript:alert(1)"))
}

// withSession wraps a handler in the session middleware backed by store.
func withSession(store session.Store, h http.Handler) http.Handler {
	return session.Middleware(session.DefaultOptions(), store)(h)
}

func TestRequireLoginRedirectsWithNext(t *testing.T) {
	m := NewManager()
	store := session.NewMemoryStore()

	protected := withSession(store, m.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest("GET", "/new_store", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fnew_store", rec.Header().Get("Location"))
}

func TestLoginThenAccessProtected(t *testing.T) {
	m := NewManager()
	store := session.NewMemoryStore()

	mux := http.NewServeMux()
	mux.HandleFunc("/do-login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, m.Login(w, r, 7, false))
	})
	mux.Handle("/protected", m.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.UserID(r)
		require.True(t, ok)
		assert.Equal(t, uint(7), id)
		w.WriteHeader(http.StatusOK)
	})))
	handler := withSession(store, mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/do-login", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest("GET", "/protected", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	m := NewManager()
	store := session.NewMemoryStore()

	mux := http.NewServeMux()
	mux.HandleFunc("/do-login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, m.Login(w, r, 7, true))
	})
	mux.HandleFunc("/do-logout", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, m.Logout(w, r))
	})
	mux.Handle("/protected", m.RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	handler := withSession(store, mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/do-login", nil))
	loginCookies := rec.Result().Cookies()

	// Remember cookie was issued alongside the session cookie.
	names := make([]string, 0, len(loginCookies))
	for _, c := range loginCookies {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, m.RememberCookie)

	req := httptest.NewRequest("GET", "/do-logout", nil)
	for _, c := range loginCookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// The session cookie no longer grants access.
	req = httptest.NewRequest("GET", "/protected", nil)
	for _, c := range loginCookies {
		if c.Name == m.RememberCookie {
			continue // expired by logout
		}
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRememberMiddlewareRevivesSession(t *testing.T) {
	m := NewManager()
	store := session.NewMemoryStore()

	token, err := GenerateRememberToken(11, time.Hour)
	require.NoError(t, err)

	handler := withSession(store, m.Remember(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.UserID(r)
		require.True(t, ok)
		assert.Equal(t, uint(11), id)
		w.WriteHeader(http.StatusOK)
	})))

	// No session cookie, only the long-lived remember cookie.
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: m.RememberCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
