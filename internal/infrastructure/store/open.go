// Package store elige el adaptador de CollectionStore según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/redis"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

// Open abre el store configurado. close libera conexiones y nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.CollectionStore, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		return memory.NewCollectionStore(), func() {}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s := postgres.NewCollectionStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("store listo")
		return s, pool.Close, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("addr", cfg.Redis.Addr).Msg("store listo")
		return redis.NewCollectionStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("store: driver desconocido %q", cfg.Store.Driver)
}
