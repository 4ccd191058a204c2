package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/seuhd/campuscoffee/internal/config"
	"github.com/seuhd/campuscoffee/internal/database"
	"github.com/seuhd/campuscoffee/internal/logger"
	"github.com/seuhd/campuscoffee/internal/middleware"
	"github.com/seuhd/campuscoffee/internal/modules/auth"
	"github.com/seuhd/campuscoffee/internal/modules/pos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, "campuscoffee")
	if err != nil {
		log.Fatal(err)
	}
	defer l.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Database ────────────────────────────────────────────
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		l.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()
	l.Info("connected to database")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, l); err != nil {
			l.Fatal("migration failed", zap.Error(err))
		}
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.RequestLogger(l))
	router.Use(chimw.Recoverer)

	// ── POS ─────────────────────────────────────────────────
	validate, err := pos.NewValidator()
	if err != nil {
		l.Fatal("validator setup failed", zap.Error(err))
	}

	posRepo := pos.NewPostgresRepository(db, l)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			l.Warn("redis unreachable, pos list cache will fall through", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		posRepo = pos.NewCachedRepository(posRepo, rdb, cfg.Redis.CacheTTL, l)
		l.Info("pos list cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.CacheTTL))
	}
	posService := pos.NewService(posRepo, validate, l)
	posHandler := pos.NewHandler(posService, l)
	posHandler.RegisterRoutes(router)

	// ── Admin (test support) ────────────────────────────────
	if cfg.Admin.Enabled() {
		authService := auth.NewService(cfg.Admin.PasswordHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
		router.Route("/api/admin", func(r chi.Router) {
			auth.NewHandler(authService, l).RegisterRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin(authService))
				posHandler.RegisterAdminRoutes(r)
			})
		})
		l.Info("admin routes enabled")
	}

	// ── Start Server ─────────────────────────────────────────
	srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: router}
	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	l.Info("CampusCoffee API server starting", zap.String("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Fatal("server stopped", zap.Error(err))
	}
	<-idle
	l.Info("server stopped")
}
