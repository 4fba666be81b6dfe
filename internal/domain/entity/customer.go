package entity

import (
	"strings"
	"time"
)

// CustomerStatusDelivered estado del cliente cuando recibió su pedido.
const CustomerStatusDelivered = "delivered"

// Customer representa un cliente del directorio.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IndexCustomerByName devuelve la posición del primer cliente con ese nombre
// (sin distinguir mayúsculas ni espacios en los extremos), o -1.
func IndexCustomerByName(customers []Customer, name string) int {
	name = strings.TrimSpace(name)
	for i := range customers {
		if strings.EqualFold(strings.TrimSpace(customers[i].Name), name) {
			return i
		}
	}
	return -1
}
