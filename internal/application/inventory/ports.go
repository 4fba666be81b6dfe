package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
)

// ValuationReport datos del reporte de valorización del inventario.
type ValuationReport struct {
	GeneratedAt time.Time
	Categories  []CategorySummary
	Stats       Stats
	Alerts      []entity.InventoryItem // artículos en nivel low u out
}

// ValuationReportGenerator define el puerto de salida para renderizar el reporte (PDF u otro formato).
type ValuationReportGenerator interface {
	GenerateValuationReport(ctx context.Context, report ValuationReport) ([]byte, error)
}
