package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest body para POST /api/inventory/items y PUT /api/inventory/items/{id}.
// Stock y min_stock son enteros: un valor fraccionario hace fallar el decode.
type ItemRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
}

// ItemResponse artículo del inventario con su nivel de salud.
type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"category_label"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"min_stock"`
	Price         decimal.Decimal `json:"price"`
	Value         decimal.Decimal `json:"value"` // price × stock
	Tier          string          `json:"tier"`  // out, low, ok
	Supplier      string          `json:"supplier"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ItemListResponse listado (o búsqueda) de artículos.
type ItemListResponse struct {
	Total int            `json:"total"`
	Items []ItemResponse `json:"items"`
}

// AdjustStockRequest body para POST /api/inventory/items/{id}/adjust.
type AdjustStockRequest struct {
	Direction string `json:"direction"` // increase, decrease
	Quantity  int    `json:"quantity"`
}

// StockDeltaRequest entrada del ajuste masivo; delta > 0 suma, delta < 0 resta.
type StockDeltaRequest struct {
	ID    string `json:"id"`
	Delta int    `json:"delta"`
}

// BulkAdjustRequest body para POST /api/inventory/adjustments.
type BulkAdjustRequest struct {
	Entries []StockDeltaRequest `json:"entries"`
}

// BulkAdjustEntryResponse resultado de una entrada: item o error, nunca ambos.
type BulkAdjustEntryResponse struct {
	ID    string         `json:"id"`
	Item  *ItemResponse  `json:"item,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// BulkAdjustResponse resultados en el orden de las entradas.
type BulkAdjustResponse struct {
	Applied int                       `json:"applied"`
	Failed  int                       `json:"failed"`
	Results []BulkAdjustEntryResponse `json:"results"`
}

// CategorySummaryResponse agregado por categoría.
type CategorySummaryResponse struct {
	Key            string          `json:"key"`
	Label          string          `json:"label"`
	Icon           string          `json:"icon"`
	ItemCount      int             `json:"item_count"`
	TotalStock     int             `json:"total_stock"`
	TotalValue     decimal.Decimal `json:"total_value"`
	TotalValueText string          `json:"total_value_text"`
	HasAlert       bool            `json:"has_alert"`
}

// StatsResponse conteos por nivel y valor total.
type StatsResponse struct {
	Total          int             `json:"total"`
	Out            int             `json:"out"`
	Low            int             `json:"low"`
	OK             int             `json:"ok"`
	TotalValue     decimal.Decimal `json:"total_value"`
	TotalValueText string          `json:"total_value_text"`
	Currency       string          `json:"currency"`
}

// ReplenishmentSuggestionDTO sugerencia de pedido para un artículo en alerta.
type ReplenishmentSuggestionDTO struct {
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	Supplier      string          `json:"supplier"`
	Tier          string          `json:"tier"`
	CurrentStock  int             `json:"current_stock"`
	MinStock      int             `json:"min_stock"`
	IdealStock    int             `json:"ideal_stock"`   // ceil(min_stock × 1.5)
	SuggestedQty  int             `json:"suggested_qty"` // ideal_stock - current_stock, mínimo 1
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Priority      int             `json:"priority"` // 1 = más urgente
}

// ReplenishmentListResponse cuerpo de GET /api/inventory/replenishment-list.
type ReplenishmentListResponse struct {
	Total          int                          `json:"total"`
	Replenishments []ReplenishmentSuggestionDTO `json:"replenishments"`
}
