package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/infrastructure/memory"
)

func TestGenerateReplenishmentList_PrioridadYCantidad(t *testing.T) {
	seed := []entity.InventoryItem{
		{ID: "ok", Name: "Sobrado", Category: entity.CategoryFans, Stock: 50, MinStock: 5, Price: decimal.NewFromInt(10)},
		{ID: "low", Name: "Bajo", Category: entity.CategoryFans, Stock: 3, MinStock: 10, Price: decimal.NewFromInt(20)},
		{ID: "out", Name: "Agotado", Category: entity.CategoryBatteries, Stock: 0, MinStock: 4, Price: decimal.NewFromInt(100)},
		{ID: "low2", Name: "Casi", Category: entity.CategoryFans, Stock: 5, MinStock: 5, Price: decimal.NewFromInt(1)},
	}
	uc := appinv.NewReplenishmentUseCase(appinv.NewLedger(seed, memory.NewCollectionStore(), nil))

	list := uc.GenerateReplenishmentList()
	require.Len(t, list, 3)

	assert.Equal(t, "out", list[0].ItemID, "sin stock va primero")
	assert.Equal(t, inventory.TierOut, list[0].Tier)
	assert.Equal(t, 6, list[0].IdealStock)
	assert.Equal(t, 6, list[0].SuggestedQty)
	assert.True(t, decimal.NewFromInt(600).Equal(list[0].EstimatedCost))

	assert.Equal(t, "low", list[1].ItemID, "mayor déficit antes")
	assert.Equal(t, 15, list[1].IdealStock)
	assert.Equal(t, 12, list[1].SuggestedQty)

	assert.Equal(t, "low2", list[2].ItemID)
	assert.Equal(t, 8, list[2].IdealStock)
	assert.Equal(t, 3, list[2].SuggestedQty)

	for i, s := range list {
		assert.Equal(t, i+1, s.Priority)
	}
}

func TestGenerateReplenishmentList_SinAlertas(t *testing.T) {
	uc := appinv.NewReplenishmentUseCase(appinv.NewLedger(nil, memory.NewCollectionStore(), nil))
	assert.Empty(t, uc.GenerateReplenishmentList())
}
