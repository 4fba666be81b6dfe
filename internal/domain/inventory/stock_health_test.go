package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
)

func TestClassify_Niveles(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     inventory.StockTier
	}{
		{"sin stock", 0, 5, inventory.TierOut},
		{"sin stock con minimo cero", 0, 0, inventory.TierOut},
		{"bajo el minimo", 4, 5, inventory.TierLow},
		{"igual al minimo", 5, 5, inventory.TierLow},
		{"sobre el minimo", 6, 5, inventory.TierOK},
		{"minimo cero con stock", 1, 0, inventory.TierOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inventory.Classify(tc.stock, tc.minStock))
		})
	}
}

// Classify depende solo de (stock, minStock): misma entrada, misma salida.
func TestClassify_EsPura(t *testing.T) {
	for stock := 0; stock <= 20; stock++ {
		for min := 0; min <= 10; min++ {
			assert.Equal(t, inventory.Classify(stock, min), inventory.Classify(stock, min))
		}
	}
}

func TestStockTier_NeedsAttention(t *testing.T) {
	assert.True(t, inventory.TierOut.NeedsAttention())
	assert.True(t, inventory.TierLow.NeedsAttention())
	assert.False(t, inventory.TierOK.NeedsAttention())
}

func TestParseTier(t *testing.T) {
	for _, s := range []string{"out", "low", "ok"} {
		tier, ok := inventory.ParseTier(s)
		assert.True(t, ok, s)
		assert.Equal(t, inventory.StockTier(s), tier)
	}
	_, ok := inventory.ParseTier("available")
	assert.False(t, ok)
}
