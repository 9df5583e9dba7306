package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save("abc", map[string]interface{}{"user_id": uint(7)}, time.Minute))

	data, ok := store.Load("abc")
	require.True(t, ok)
	assert.Equal(t, uint(7), data["user_id"])

	require.NoError(t, store.Delete("abc"))
	_, ok = store.Load("abc")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("abc", map[string]interface{}{"k": "v"}, -time.Second))

	_, ok := store.Load("abc")
	assert.False(t, ok, "expired session must not load")
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore()
	original := map[string]interface{}{"k": "v"}
	require.NoError(t, store.Save("abc", original, time.Minute))

	original["k"] = "mutated"
	data, ok := store.Load("abc")
	require.True(t, ok)
	assert.Equal(t, "v", data["k"])
}

func TestMiddlewarePersistsAcrossRequests(t *testing.T) {
	store := NewMemoryStore()
	opts := DefaultOptions()

	mux := http.NewServeMux()
	mux.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
		sess := FromCtx(r)
		sess.Set("user_id", uint(42))
		require.NoError(t, sess.Save(w))
	})
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromCtx(r).GetUint("user_id")
		if ok {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte{byte(id)})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
	handler := Middleware(opts, store)(mux)

	// First request sets a value and receives the cookie.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/set", nil))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, opts.CookieName, cookies[0].Name)

	// Second request with the cookie sees the value.
	req := httptest.NewRequest("GET", "/get", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// A request without the cookie gets a fresh session.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/get", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUintAcceptsJSONNumbers(t *testing.T) {
	s := &Session{data: map[string]interface{}{
		"a": uint(1),
		"b": 2,
		"c": float64(3), // numbers come back as float64 after a Redis round trip
		"d": "nope",
	}}

	v, ok := s.GetUint("a")
	assert.True(t, ok)
	assert.Equal(t, uint(1), v)

	v, ok = s.GetUint("b")
	assert.True(t, ok)
	assert.Equal(t, uint(2), v)

	v, ok = s.GetUint("c")
	assert.True(t, ok)
	assert.Equal(t, uint(3), v)

	_, ok = s.GetUint("d")
	assert.False(t, ok)

	_, ok = s.GetUint("missing")
	assert.False(t, ok)
}

func TestFlashShownExactlyOnce(t *testing.T) {
	store := NewMemoryStore()
	sess := &Session{
		id:    "flash-test",
		data:  map[string]interface{}{},
		opts:  DefaultOptions(),
		store: store,
	}

	w := httptest.NewRecorder()
	sess.Flash("Store was updated successfully.")
	require.NoError(t, sess.Save(w))

	msgs := sess.PopFlashes(httptest.NewRecorder())
	require.Equal(t, []string{"Store was updated successfully."}, msgs)

	assert.Empty(t, sess.PopFlashes(httptest.NewRecorder()), "second pop must be empty")

	// The cleared state was persisted immediately.
	data, ok := store.Load("flash-test")
	require.True(t, ok)
	_, has := data["_flashes"]
	assert.False(t, has)
}

func TestInvalidateClearsSession(t *testing.T) {
	sess := &Session{
		id:    "x",
		data:  map[string]interface{}{"user_id": uint(9)},
		opts:  DefaultOptions(),
		store: NewMemoryStore(),
	}

	sess.Invalidate()
	_, ok := sess.GetUint("user_id")
	assert.False(t, ok)
}
