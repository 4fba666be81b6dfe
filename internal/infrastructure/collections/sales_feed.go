package collections

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
)

var _ ports.SalesFeed = (*SalesFeed)(nil)

// SalesFeed lee las ventas publicadas bajo la clave "sales" (solo lectura).
type SalesFeed struct {
	store repository.CollectionStore
}

// NewSalesFeed construye el feed.
func NewSalesFeed(store repository.CollectionStore) *SalesFeed {
	return &SalesFeed{store: store}
}

// Sales devuelve la lista completa de ventas en su orden.
func (f *SalesFeed) Sales(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	if _, err := f.store.Load(ctx, repository.KeySales, &sales); err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return sales, nil
}
