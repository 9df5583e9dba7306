// Package server assembles the application: database, session store,
// middleware stack, controllers, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/grocerly/grocerly/app/controllers"
	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/app/routes"
	"github.com/grocerly/grocerly/app/views"
	"github.com/grocerly/grocerly/config"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/cache"
	"github.com/grocerly/grocerly/pkg/database"
	"github.com/grocerly/grocerly/pkg/logger"
	"github.com/grocerly/grocerly/pkg/metrics"
	"github.com/grocerly/grocerly/pkg/middleware"
	"github.com/grocerly/grocerly/pkg/reqid"
	"github.com/grocerly/grocerly/pkg/router"
	"github.com/grocerly/grocerly/pkg/session"
	"github.com/grocerly/grocerly/pkg/view"
)

// Build assembles the router with the full middleware stack and every page
// mounted, over an already-open database and session store. Split out from
// Start so tests can drive the handler with httptest.
func Build(db *gorm.DB, store session.Store) (*router.Router, error) {
	r := router.New()

	funcs := template.FuncMap{
		// route builds a URL from a route name and key/value pairs:
		// {{route "store_detail" "store_id" .ID}}
		"route": func(name string, pairs ...interface{}) string {
			params := make(map[string]string, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				params[fmt.Sprint(pairs[i])] = fmt.Sprint(pairs[i+1])
			}
			u, err := r.URL(name, params)
			if err != nil {
				logger.Error("template route lookup", "name", name, "error", err)
				return "/"
			}
			return u
		},
	}

	renderer, err := view.New(views.FS, funcs)
	if err != nil {
		return nil, fmt.Errorf("server: build views: %w", err)
	}

	am := auth.NewManager()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions(), store))
	r.Use(am.Remember)
	r.Use(middleware.RateLimit(300, time.Minute))

	r.Get("/metrics", "metrics", metrics.Handler())

	storeRepo := repositories.NewStoreRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	userRepo := repositories.NewUserRepository(db)

	routes.Register(r, am, routes.Controllers{
		Stores:   controllers.NewStoreController(renderer, am, r, storeRepo, userRepo),
		Items:    controllers.NewItemController(renderer, am, r, itemRepo, storeRepo, userRepo),
		Shopping: controllers.NewShoppingController(renderer, am, r, itemRepo, userRepo),
		Auth:     controllers.NewAuthController(renderer, am, r, userRepo),
	})

	return r, nil
}

// Start boots the application and serves HTTP until interrupted.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := logger.EnableMongoSink(uri, "grocerly", "logs")
		if err != nil {
			logger.Warn("mongo log sink unavailable, logging to stdout only", "error", err)
		} else {
			defer mh.Close()
		}
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("server: auto-migrate: %w", err)
	}

	var store session.Store
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, falling back to in-memory sessions", "error", err)
		store = session.NewMemoryStore()
	} else {
		store = session.NewRedisStore()
	}

	r, err := Build(db, store)
	if err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "env", config.AppEnv())
		fmt.Printf("Grocerly running on %s\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
