// Package app wires together all dependencies and dispatches CLI commands.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jay10z/it-equipment-ordering-system/internal/api"
	"github.com/jay10z/it-equipment-ordering-system/internal/cart"
	"github.com/jay10z/it-equipment-ordering-system/internal/catalog"
	"github.com/jay10z/it-equipment-ordering-system/internal/checkout"
	"github.com/jay10z/it-equipment-ordering-system/internal/config"
	"github.com/jay10z/it-equipment-ordering-system/internal/session"
	"github.com/jay10z/it-equipment-ordering-system/internal/store"
	redisstore "github.com/jay10z/it-equipment-ordering-system/internal/store/redis"
	"github.com/jay10z/it-equipment-ordering-system/pkg/httpclient"
)

// App holds the fully wired storefront client.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	rdb *redis.Client

	creds    *session.Credentials
	sessions *session.Manager
	carts    *cart.Store
	catalog  *catalog.Cache
	backend  *api.Client
	checkout *checkout.Coordinator
}

// NewApp creates an application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger, out io.Writer) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}

	kv, err := a.newStore(cfg)
	if err != nil {
		return nil, err
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	httpCfg.MaxRetries = cfg.HTTPMaxRetries
	client := httpclient.New(httpCfg)

	cbCfg := httpclient.DefaultCircuitBreakerConfig("backend-api")
	cbCfg.Timeout = cfg.BreakerTimeout
	cbCfg.FailureRatio = cfg.BreakerFailureRatio
	cbCfg.MinRequests = cfg.BreakerMinRequests
	doer := httpclient.NewCircuitBreakerClient(client, cbCfg, logger)

	a.creds = session.NewCredentials(kv, logger)
	a.backend = api.NewClient(cfg.APIBaseURL, doer, a.creds, logger)
	a.sessions = session.NewManager(a.creds, a.backend, logger)
	a.carts = cart.NewStore(kv, logger)
	a.catalog = catalog.NewCache(a.backend, logger)
	a.checkout = checkout.NewCoordinator(a.carts, a.backend, a.creds, logger)

	return a, nil
}

// newStore builds the key-value backend named by the configuration.
func (a *App) newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return store.NewMemory(), nil

	case config.BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.rdb = rdb
		a.logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		return redisstore.New(rdb, cfg.RedisTTL), nil

	case config.BackendFile:
		dir := cfg.StateDir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				base = "."
			}
			dir = filepath.Join(base, "storefront")
		}
		fs, err := store.NewFile(dir)
		if err != nil {
			return nil, fmt.Errorf("open state dir: %w", err)
		}
		return fs, nil

	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.StoreBackend)
	}
}

// Close releases external connections.
func (a *App) Close() error {
	if a.rdb != nil {
		return a.rdb.Close()
	}
	return nil
}
