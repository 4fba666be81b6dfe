package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-entregas/pkg/config"
)

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func newStore(t *testing.T) (*postgres.CollectionStore, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := postgres.NewCollectionStore(pool)
	require.NoError(t, store.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `DELETE FROM collection_revisions WHERE key LIKE 'test:%'; DELETE FROM collections WHERE key LIKE 'test:%'`)
	require.NoError(t, err)
	return store, pool
}

func TestCollectionStore_LoadInexistente(t *testing.T) {
	store, _ := newStore(t)
	var items []entity.InventoryItem
	found, err := store.Load(context.Background(), "test:vacio", &items)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, items)
}

func TestCollectionStore_SaveLoadYRevisiones(t *testing.T) {
	ctx := context.Background()
	store, pool := newStore(t)
	key := "test:inventory"

	v1 := []entity.InventoryItem{{ID: "1", Name: "Panel X", Category: entity.CategoryPanels, Stock: 10, MinStock: 5, Price: decimal.RequireFromString("120.50")}}
	require.NoError(t, store.Save(ctx, key, v1))

	v2 := append(v1, entity.InventoryItem{ID: "2", Name: "Inversor", Category: entity.CategoryInverters, Stock: 1, MinStock: 2, Price: decimal.NewFromInt(900)})
	require.NoError(t, store.Save(ctx, key, v2))

	var got []entity.InventoryItem
	found, err := store.Load(ctx, key, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 2)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("120.50")))

	var rev, history int64
	require.NoError(t, pool.QueryRow(ctx, `SELECT revision FROM collections WHERE key = $1`, key).Scan(&rev))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM collection_revisions WHERE key = $1`, key).Scan(&history))
	assert.Equal(t, int64(2), rev)
	assert.Equal(t, int64(2), history)
}
