package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/feastline/orderd/internal/config"
	"github.com/feastline/orderd/internal/domain/repository"
	"github.com/feastline/orderd/internal/storage/kv"
	"github.com/feastline/orderd/internal/storage/orders"
	"github.com/feastline/orderd/internal/storage/postgres"
	"github.com/feastline/orderd/internal/storage/redis"
)

// Module wires the configured KV backend and the repositories built on it.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(store kv.Store, logger *slog.Logger) repository.OrderRepository {
			return orders.NewRepository(store, logger)
		},
		func(store kv.Store, logger *slog.Logger) repository.ProfileRepository {
			return orders.NewProfileRepository(store, logger)
		},
	),
)

type storeParams struct {
	fx.In

	Ctx       context.Context
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStore(p storeParams) (kv.Store, error) {
	backend := p.Config.StorageBackend()
	switch backend {
	case config.StorageRedis:
		store, err := redis.New(p.Ctx, p.Config.RedisAddress, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{OnStop: func(context.Context) error {
			return store.Close()
		}})
		p.Logger.Info("kv store ready", slog.String("backend", backend))
		return store, nil
	case config.StoragePostgres:
		store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{OnStop: func(context.Context) error {
			store.Close()
			return nil
		}})
		p.Logger.Info("kv store ready", slog.String("backend", backend))
		return store, nil
	case config.StorageMemory:
		p.Logger.Warn("kv store is in-memory, orders will not survive restarts")
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
