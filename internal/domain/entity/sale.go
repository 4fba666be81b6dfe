package entity

// Sale registro de venta del feed de ventas (solo lectura).
type Sale struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Product  string `json:"product"`
}
