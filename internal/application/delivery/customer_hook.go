package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/domain"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
)

var _ DeliveredHook = (*CustomerStatusHook)(nil)

// CustomerStatusHook marca como delivered al cliente de la entrega (buscado por nombre).
type CustomerStatusHook struct {
	directory ports.CustomerDirectory
	now       func() time.Time
}

// NewCustomerStatusHook construye el hook sobre el directorio de clientes.
func NewCustomerStatusHook(directory ports.CustomerDirectory) *CustomerStatusHook {
	return &CustomerStatusHook{directory: directory, now: time.Now}
}

// OnDelivered marca al primer cliente cuyo nombre coincide y guarda el directorio completo.
func (h *CustomerStatusHook) OnDelivered(ctx context.Context, d entity.Delivery) error {
	customers, err := h.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("listar clientes: %w", err)
	}
	idx := entity.IndexCustomerByName(customers, d.Customer)
	if idx < 0 {
		return fmt.Errorf("%w: cliente %q", domain.ErrNotFound, d.Customer)
	}
	customers[idx].Status = entity.CustomerStatusDelivered
	customers[idx].UpdatedAt = h.now()
	if err := h.directory.Save(ctx, customers); err != nil {
		return fmt.Errorf("guardar clientes: %w", err)
	}
	return nil
}
