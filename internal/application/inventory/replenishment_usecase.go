package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
)

// ReplenishmentSuggestion sugerencia de pedido para un artículo en nivel low u out.
type ReplenishmentSuggestion struct {
	ItemID        string
	Name          string
	Supplier      string
	Tier          inventory.StockTier
	CurrentStock  int
	MinStock      int
	IdealStock    int
	SuggestedQty  int
	EstimatedCost decimal.Decimal
	Priority      int // 1 = más urgente
}

// ReplenishmentUseCase genera la lista de reposición a partir del libro de stock.
type ReplenishmentUseCase struct {
	ledger *Ledger
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(ledger *Ledger) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{ledger: ledger}
}

// GenerateReplenishmentList devuelve los artículos en alerta con la cantidad sugerida
// para llegar a 1.5 × minStock (mínimo una unidad), ordenados por urgencia.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList() []ReplenishmentSuggestion {
	items := uc.ledger.List()
	out := make([]ReplenishmentSuggestion, 0)
	for _, it := range items {
		tier := inventory.Classify(it.Stock, it.MinStock)
		if !tier.NeedsAttention() {
			continue
		}
		ideal := (it.MinStock*3 + 1) / 2 // ceil(1.5 × minStock)
		qty := ideal - it.Stock
		if qty < 1 {
			qty = 1
		}
		out = append(out, ReplenishmentSuggestion{
			ItemID:        it.ID,
			Name:          it.Name,
			Supplier:      it.Supplier,
			Tier:          tier,
			CurrentStock:  it.Stock,
			MinStock:      it.MinStock,
			IdealStock:    ideal,
			SuggestedQty:  qty,
			EstimatedCost: it.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}

	// Primero sin stock, luego mayor déficit bajo el mínimo; empate por nombre.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Tier == inventory.TierOut) != (b.Tier == inventory.TierOut) {
			return a.Tier == inventory.TierOut
		}
		defA, defB := a.MinStock-a.CurrentStock, b.MinStock-b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		return a.Name < b.Name
	})
	for i := range out {
		out[i].Priority = i + 1
	}
	return out
}
