package redis_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/redis"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
)

const testPrefix = "test:inventario:"

func getClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client, err := redis.NewClient(context.Background(), config.RedisConfig{Addr: addr})
	if err != nil {
		t.Skipf("Redis no disponible: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCollectionStore_LoadInexistente(t *testing.T) {
	client := getClient(t)
	ctx := context.Background()
	client.Del(ctx, testPrefix+repository.KeyDeliveries)

	store := redis.NewCollectionStore(client, testPrefix)
	var got []entity.Delivery
	found, err := store.Load(ctx, repository.KeyDeliveries, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCollectionStore_SaveLoad(t *testing.T) {
	client := getClient(t)
	ctx := context.Background()
	client.Del(ctx, testPrefix+repository.KeyDeliveries)

	store := redis.NewCollectionStore(client, testPrefix)
	in := []entity.Delivery{{ID: "d1", SaleID: "1", Customer: "A", Order: "P1", Status: entity.DeliveryStatusShipped, Courier: "DHL"}}
	require.NoError(t, store.Save(ctx, repository.KeyDeliveries, in))

	var got []entity.Delivery
	found, err := store.Load(ctx, repository.KeyDeliveries, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "DHL", got[0].Courier)

	// La clave lleva el prefijo configurado.
	n, err := client.Exists(ctx, testPrefix+repository.KeyDeliveries).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
