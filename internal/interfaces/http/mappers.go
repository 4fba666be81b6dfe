package http

import (
	"github.com/jhoicas/Inventario-entregas/internal/application/dto"
	appinventory "github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-entregas/pkg/money"
)

func toItemResponse(it entity.InventoryItem) dto.ItemResponse {
	label := string(it.Category)
	if d, ok := entity.LookupCategory(it.Category); ok {
		label = d.Label
	}
	return dto.ItemResponse{
		ID:            it.ID,
		Name:          it.Name,
		Category:      string(it.Category),
		CategoryLabel: label,
		Stock:         it.Stock,
		MinStock:      it.MinStock,
		Price:         it.Price,
		Value:         it.Value(),
		Tier:          string(inventory.Classify(it.Stock, it.MinStock)),
		Supplier:      it.Supplier,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}

func toItemList(items []entity.InventoryItem) dto.ItemListResponse {
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return dto.ItemListResponse{Total: len(out), Items: out}
}

func toItemFields(in dto.ItemRequest) appinventory.ItemFields {
	return appinventory.ItemFields{
		Name:     in.Name,
		Category: entity.Category(in.Category),
		Stock:    in.Stock,
		MinStock: in.MinStock,
		Price:    in.Price,
		Supplier: in.Supplier,
	}
}

func toCategorySummaries(sums []appinventory.CategorySummary, f *money.Formatter) []dto.CategorySummaryResponse {
	out := make([]dto.CategorySummaryResponse, 0, len(sums))
	for _, s := range sums {
		out = append(out, dto.CategorySummaryResponse{
			Key:            string(s.Category.Key),
			Label:          s.Category.Label,
			Icon:           s.Category.Icon,
			ItemCount:      s.ItemCount,
			TotalStock:     s.TotalStock,
			TotalValue:     s.TotalValue,
			TotalValueText: f.Format(s.TotalValue),
			HasAlert:       s.HasAlert,
		})
	}
	return out
}

func toStatsResponse(s appinventory.Stats, f *money.Formatter) dto.StatsResponse {
	return dto.StatsResponse{
		Total:          s.Total,
		Out:            s.Out,
		Low:            s.Low,
		OK:             s.OK,
		TotalValue:     s.TotalValue,
		TotalValueText: f.Format(s.TotalValue),
		Currency:       f.Currency(),
	}
}

func toReplenishmentList(list []appinventory.ReplenishmentSuggestion) dto.ReplenishmentListResponse {
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ItemID:        s.ItemID,
			Name:          s.Name,
			Supplier:      s.Supplier,
			Tier:          string(s.Tier),
			CurrentStock:  s.CurrentStock,
			MinStock:      s.MinStock,
			IdealStock:    s.IdealStock,
			SuggestedQty:  s.SuggestedQty,
			EstimatedCost: s.EstimatedCost,
			Priority:      s.Priority,
		})
	}
	return dto.ReplenishmentListResponse{Total: len(out), Replenishments: out}
}

func toDeliveryResponse(d entity.Delivery) dto.DeliveryResponse {
	return dto.DeliveryResponse{
		ID:        d.ID,
		SaleID:    d.SaleID,
		Customer:  d.Customer,
		Order:     d.Order,
		Status:    string(d.Status),
		Courier:   d.Courier,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toSales(in []dto.SaleRequest) []entity.Sale {
	out := make([]entity.Sale, 0, len(in))
	for _, s := range in {
		out = append(out, entity.Sale{ID: s.ID, Customer: s.Customer, Product: s.Product})
	}
	return out
}
