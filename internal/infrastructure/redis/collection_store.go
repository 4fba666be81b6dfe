// Package redis implementa CollectionStore sobre Redis: un string JSON por colección.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
)

var _ repository.CollectionStore = (*CollectionStore)(nil)

// CollectionStore guarda cada colección bajo prefix+key, sin expiración.
type CollectionStore struct {
	client *goredis.Client
	prefix string
}

// NewClient abre el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewCollectionStore construye el adaptador sobre un cliente ya abierto.
func NewCollectionStore(client *goredis.Client, prefix string) *CollectionStore {
	return &CollectionStore{client: client, prefix: prefix}
}

// Load decodifica la colección en dest; found es false si la clave no existe.
func (s *CollectionStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Save reemplaza la colección completa.
func (s *CollectionStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
