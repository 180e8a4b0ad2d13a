package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/professionals-backend/internal/clients/redis"
	"github.com/yungbote/professionals-backend/internal/data/db"
	"github.com/yungbote/professionals-backend/internal/http"
	"github.com/yungbote/professionals-backend/internal/observability"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	store        *db.Service
	clients      Clients
	otelShutdown func(context.Context) error
}

// New builds the full object graph: logger, tracing, storage, optional
// Redis, repos, aggregate, services, handlers and router.
func New(ctx context.Context) (*App, error) {
	cfg := LoadConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: "professionals-api",
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	store, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrateAll(store.DB()); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	if err := db.EnsureProfessionalIndexes(store.DB()); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = store.Close()
		log.Sync()
		return nil, err
	}

	metrics := observability.Init(log)
	var redisPinger observability.Pinger
	if clients.Redis != nil {
		redisPinger = redis.Pinger{RDB: clients.Redis}
	}
	metrics.Track(store.DB(), redisPinger)

	reposet := wireRepos(store.DB(), log)
	serviceset := wireServices(store.DB(), log, reposet, clients, metrics)
	handlerset := wireHandlers(log, store, clients, serviceset)
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           store.DB(),
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		store:        store,
		clients:      clients,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	srv := http.NewServer(a.Router)
	a.Log.Info("HTTP server listening", "port", a.Cfg.Port, "driver", a.store.Driver())
	return srv.Run(ctx, ":"+a.Cfg.Port, a.Cfg.ShutdownTimeout)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if a.otelShutdown != nil {
		_ = a.otelShutdown(shutdownCtx)
	}
	a.clients.Close()
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
