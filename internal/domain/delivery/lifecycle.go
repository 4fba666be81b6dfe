// Package delivery contiene las reglas puras del ciclo de vida de una entrega:
// pending -> shipped -> delivered, solo hacia adelante y sin saltos.
package delivery

import "github.com/jhoicas/Inventario-entregas/internal/domain/entity"

var order = []entity.DeliveryStatus{
	entity.DeliveryStatusPending,
	entity.DeliveryStatusShipped,
	entity.DeliveryStatusDelivered,
}

// ParseStatus convierte un string en DeliveryStatus. ok es false si no es un estado conocido.
func ParseStatus(s string) (entity.DeliveryStatus, bool) {
	for _, st := range order {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Next devuelve el estado que sigue a current. ok es false si current es terminal o desconocido.
func Next(current entity.DeliveryStatus) (entity.DeliveryStatus, bool) {
	for i, st := range order {
		if st == current && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return "", false
}

// CanAdvance indica si target sigue inmediatamente a current.
func CanAdvance(current, target entity.DeliveryStatus) bool {
	next, ok := Next(current)
	return ok && next == target
}

// RequiresCourier indica si entrar en target exige transportadora.
func RequiresCourier(target entity.DeliveryStatus) bool {
	return target == entity.DeliveryStatusShipped
}
