package dto

import "time"

// DeliveryResponse registro de entrega.
type DeliveryResponse struct {
	ID        string    `json:"id"`
	SaleID    string    `json:"sale_id"`
	Customer  string    `json:"customer"`
	Order     string    `json:"order"`
	Status    string    `json:"status"`
	Courier   string    `json:"courier,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeliveryListResponse listado con conteos por estado.
type DeliveryListResponse struct {
	Total      int                `json:"total"`
	Counts     map[string]int     `json:"counts"`
	Deliveries []DeliveryResponse `json:"deliveries"`
}

// SaleRequest venta que origina una entrega.
type SaleRequest struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Product  string `json:"product"`
}

// SyncDeliveriesRequest body para POST /api/deliveries/sync.
// Sin ventas en el body se leen del feed configurado.
type SyncDeliveriesRequest struct {
	Sales []SaleRequest `json:"sales"`
}

// SyncDeliveriesResponse cantidad de entregas creadas.
type SyncDeliveriesResponse struct {
	Created int `json:"created"`
}

// AdvanceDeliveryRequest body para POST /api/deliveries/{id}/advance.
type AdvanceDeliveryRequest struct {
	Status  string `json:"status"`
	Courier string `json:"courier"`
}
