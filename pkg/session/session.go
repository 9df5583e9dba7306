// Package session provides cookie-based HTTP session management with a
// pluggable backing store (Redis in production, memory otherwise).
//
// Usage (middleware):
//
//	r.Use(session.Middleware(session.DefaultOptions(), store))
//
// Usage (handler):
//
//	sess := session.FromCtx(r)
//	sess.Set("user_id", 42)
//	sess.Save(w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Store persists session data between requests.
type Store interface {
	// Load returns the data for a session ID; ok is false when the
	// session is unknown or expired.
	Load(id string) (data map[string]interface{}, ok bool)
	Save(id string, data map[string]interface{}, ttl time.Duration) error
	Delete(id string) error
}

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CookieName: "grocerly_session",
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     false, // set true behind TLS
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	store   Store
	changed bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Set stores a value under key in the session.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetUint is a typed convenience getter. JSON round trips through Redis turn
// numbers into float64, so all numeric kinds are accepted.
func (s *Session) GetUint(key string) (uint, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case uint:
		return n, true
	case int:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	case float64:
		if n < 0 {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// Invalidate destroys the session contents (logout).
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// Save persists the session to the store and writes the cookie.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	if err := s.store.Save(s.id, s.data, s.opts.TTL); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Flash queues a one-shot notice shown on the next rendered page.
func (s *Session) Flash(msg string) {
	list, _ := s.data["_flashes"].([]interface{})
	s.data["_flashes"] = append(list, msg)
	s.changed = true
}

// PopFlashes returns all queued notices and clears them, persisting the
// cleared state immediately so a notice is shown exactly once.
func (s *Session) PopFlashes(w http.ResponseWriter) []string {
	raw, ok := s.data["_flashes"].([]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(string); ok {
			msgs = append(msgs, m)
		}
	}

	s.Delete("_flashes")
	_ = s.Save(w)
	return msgs
}

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(opts Options, store Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts, store: store}

			if cookie, err := r.Cookie(opts.CookieName); err == nil {
				sess.id = cookie.Value
				if data, ok := store.Load(sess.id); ok {
					sess.data = data
				} else {
					sess.data = map[string]interface{}{}
				}
			} else {
				id, _ := newID()
				sess.id = id
				sess.data = map[string]interface{}{}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the session from the request context.
// Returns an empty memory-backed session if none is present.
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	id, _ := newID()
	return &Session{
		id:    id,
		data:  map[string]interface{}{},
		opts:  DefaultOptions(),
		store: NewMemoryStore(),
	}
}

// ─── Memory store ─────────────────────────────────────────────────────────────

type memoryEntry struct {
	data      map[string]interface{}
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Used in development, tests,
// and as the fallback when Redis is unreachable.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: map[string]memoryEntry{}}
}

func (m *MemoryStore) Load(id string) (map[string]interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(m.sessions, id)
		return nil, false
	}

	// Copy so in-request mutation never races another request.
	data := make(map[string]interface{}, len(entry.data))
	for k, v := range entry.data {
		data[k] = v
	}
	return data, true
}

func (m *MemoryStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[string]interface{}, len(data))
	for k, v := range data {
		copied[k] = v
	}
	m.sessions[id] = memoryEntry{data: copied, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
