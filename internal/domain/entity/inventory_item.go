package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del catálogo con su stock y precio unitario.
// Stock nunca es negativo: las salidas que lo dejarían bajo cero se rechazan.
type InventoryItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"` // punto de reorden
	Price     decimal.Decimal `json:"price"`
	Supplier  string          `json:"supplier,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Value devuelve stock × precio.
func (i InventoryItem) Value() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Stock)))
}
