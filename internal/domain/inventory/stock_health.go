package inventory

// StockTier nivel de salud del stock de un artículo.
type StockTier string

const (
	TierOut StockTier = "out"
	TierLow StockTier = "low"
	TierOK  StockTier = "ok"
)

// Classify implementa la clasificación de salud del stock (servicio de dominio).
// out si stock == 0; low si 0 < stock <= minStock; ok en otro caso.
func Classify(stock, minStock int) StockTier {
	switch {
	case stock <= 0:
		return TierOut
	case stock <= minStock:
		return TierLow
	default:
		return TierOK
	}
}

// NeedsAttention indica si el nivel amerita alerta (low u out).
func (t StockTier) NeedsAttention() bool {
	return t == TierOut || t == TierLow
}

// ParseTier convierte "out", "low" u "ok" en StockTier.
func ParseTier(s string) (StockTier, bool) {
	switch t := StockTier(s); t {
	case TierOut, TierLow, TierOK:
		return t, true
	}
	return "", false
}
