package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/grocerly/grocerly/pkg/logger"
)

// Recovery catches any panic in downstream handlers, logs the stack trace,
// and serves a plain 500 page. This is a browser-facing app, so the body is
// HTML rather than JSON.
// Always add this as the innermost middleware (last in the chain) so it wraps
// all other middleware and handlers.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", err),
					"stack", string(stack),
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, "<!doctype html><title>Server Error</title><h1>500 — Something went wrong</h1>")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
