package repository

import "context"

// Claves de las colecciones persistidas.
const (
	KeyInventory  = "inventory"
	KeyDeliveries = "deliveries"
	KeyCustomers  = "customers"
	KeySales      = "sales"
)

// CollectionStore define el puerto de persistencia clave/valor (DIP).
// Cada escritura reemplaza la colección completa bajo su clave (last-writer-wins).
type CollectionStore interface {
	// Load decodifica la colección guardada en dest. found es false si la clave no existe;
	// en ese caso dest no se modifica y el llamador conserva su valor por defecto.
	Load(ctx context.Context, key string, dest any) (found bool, err error)
	// Save reemplaza la colección completa bajo key.
	Save(ctx context.Context, key string, value any) error
}
