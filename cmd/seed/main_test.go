package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-entregas/pkg/logger"
)

func TestSeedInventory_OmiteFilasInvalidas(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStore()
	csv := "name,category,stock,min_stock,price\nPanel X,panels,10,5,120\n,rockets,1,0,1\n"

	require.NoError(t, seedInventory(ctx, s, strings.NewReader(csv), logger.Nop()))

	var items []entity.InventoryItem
	found, err := s.Load(ctx, repository.KeyInventory, &items)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, items, 1)
	assert.Equal(t, "Panel X", items[0].Name)
}

func TestSeedSalesYCustomers(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStore()

	require.NoError(t, seedSales(ctx, s, strings.NewReader("id,customer,product\n1,A,P1\n"), logger.Nop()))
	require.NoError(t, seedCustomers(ctx, s, strings.NewReader("id,name\nc1,A\n"), logger.Nop()))

	var sales []entity.Sale
	_, err := s.Load(ctx, repository.KeySales, &sales)
	require.NoError(t, err)
	assert.Len(t, sales, 1)

	var customers []entity.Customer
	_, err = s.Load(ctx, repository.KeyCustomers, &customers)
	require.NoError(t, err)
	assert.Equal(t, "A", customers[0].Name)
}

func TestRootCmd_Subcomandos(t *testing.T) {
	root := rootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"inventory", "customers", "sales"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("encoding"))
}
