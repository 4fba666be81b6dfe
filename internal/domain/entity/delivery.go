package entity

import "time"

// DeliveryStatus estado del ciclo de vida de una entrega.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// Delivery registro de entrega de una venta. Existe a lo sumo una por SaleID.
type Delivery struct {
	ID        string         `json:"id"`
	SaleID    string         `json:"sale_id"`
	Customer  string         `json:"customer"`
	Order     string         `json:"order"`
	Status    DeliveryStatus `json:"status"`
	Courier   string         `json:"courier"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
