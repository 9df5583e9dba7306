package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestURLSubstitutesParams(t *testing.T) {
	r := New()
	r.Get("/store/{store_id}", "store_detail", ok)

	u, err := r.URL("store_detail", map[string]string{"store_id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/store/7", u)
}

func TestURLMissingParam(t *testing.T) {
	r := New()
	r.Get("/store/{store_id}", "store_detail", ok)

	_, err := r.URL("store_detail", nil)
	assert.Error(t, err)
}

func TestURLUnknownRoute(t *testing.T) {
	r := New()
	_, err := r.URL("nope", nil)
	assert.Error(t, err)
}

func TestGroupPrefixesPaths(t *testing.T) {
	r := New()
	g := r.Group("/admin")
	g.Get("/stores", "admin_stores", ok)

	u, err := r.URL("admin_stores", nil)
	require.NoError(t, err)
	assert.Equal(t, "/admin/stores", u)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/stores", nil)
	r.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	g := r.Group("", mw("group"))
	g.Get("/x", "x", ok, mw("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/x", nil))

	assert.Equal(t, []string{"group", "route"}, order)
}

func TestRoutesListing(t *testing.T) {
	r := New()
	r.Get("/", "home", ok)
	r.Post("/login", "login", ok)
	r.Get("/healthz", "", ok) // unnamed registrations are not listed

	routes := r.Routes()
	assert.Equal(t, map[string]string{
		"home":  "/",
		"login": "/login",
	}, routes)
}
