package ports

import (
	"context"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
)

// SalesFeed fuente de ventas (solo lectura) que alimenta el rastreador de entregas.
type SalesFeed interface {
	Sales(ctx context.Context) ([]entity.Sale, error)
}

// CustomerDirectory directorio de clientes que se actualiza al completar una entrega.
type CustomerDirectory interface {
	List(ctx context.Context) ([]entity.Customer, error)
	// Save reemplaza la colección completa de clientes.
	Save(ctx context.Context, customers []entity.Customer) error
}
