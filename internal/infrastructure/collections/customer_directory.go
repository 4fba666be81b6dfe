// Package collections implementa los colaboradores de solo-colección (directorio de clientes,
// feed de ventas) sobre el puerto CollectionStore.
package collections

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-entregas/internal/application/ports"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/repository"
)

var _ ports.CustomerDirectory = (*CustomerDirectory)(nil)

// CustomerDirectory directorio de clientes guardado bajo la clave "customers".
type CustomerDirectory struct {
	store repository.CollectionStore
}

// NewCustomerDirectory construye el directorio.
func NewCustomerDirectory(store repository.CollectionStore) *CustomerDirectory {
	return &CustomerDirectory{store: store}
}

// List devuelve todos los clientes (vacío si la colección no existe).
func (d *CustomerDirectory) List(ctx context.Context) ([]entity.Customer, error) {
	var customers []entity.Customer
	if _, err := d.store.Load(ctx, repository.KeyCustomers, &customers); err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	return customers, nil
}

// Save reemplaza la colección completa.
func (d *CustomerDirectory) Save(ctx context.Context, customers []entity.Customer) error {
	if err := d.store.Save(ctx, repository.KeyCustomers, customers); err != nil {
		return fmt.Errorf("save customers: %w", err)
	}
	return nil
}
