package collections_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/collections"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/memory"
)

func TestCustomerDirectory_SaveYList(t *testing.T) {
	ctx := context.Background()
	dir := collections.NewCustomerDirectory(memory.NewCollectionStore())
	customers := []entity.Customer{{ID: "c1", Name: "Ana Pérez"}, {ID: "c2", Name: "Luis Gómez"}}
	require.NoError(t, dir.Save(ctx, customers))

	got, err := dir.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[entity.IndexCustomerByName(got, "  ana pérez ")].ID)
	assert.Equal(t, -1, entity.IndexCustomerByName(got, "Nadie"))
}

func TestCustomerDirectory_SinColeccion(t *testing.T) {
	dir := collections.NewCustomerDirectory(memory.NewCollectionStore())
	list, err := dir.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSalesFeed_Sales(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCollectionStore()
	sales := []entity.Sale{{ID: "1", Customer: "A", Product: "P1"}, {ID: "2", Customer: "B", Product: "P2"}}
	require.NoError(t, store.Save(ctx, repository.KeySales, sales))

	got, err := collections.NewSalesFeed(store).Sales(ctx)
	require.NoError(t, err)
	assert.Equal(t, sales, got)
}
