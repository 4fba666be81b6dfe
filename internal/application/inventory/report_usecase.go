package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
)

// ReportUseCase genera el reporte de valorización por categoría.
type ReportUseCase struct {
	ledger    *Ledger
	generator ValuationReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(ledger *Ledger, generator ValuationReportGenerator) *ReportUseCase {
	return &ReportUseCase{ledger: ledger, generator: generator, now: time.Now}
}

// Build arma los datos del reporte desde el libro (sin renderizar).
func (uc *ReportUseCase) Build() ValuationReport {
	var alerts []entity.InventoryItem
	for _, it := range uc.ledger.List() {
		if inventory.Classify(it.Stock, it.MinStock).NeedsAttention() {
			alerts = append(alerts, it)
		}
	}
	return ValuationReport{
		GeneratedAt: uc.now(),
		Categories:  uc.ledger.AggregateByCategory(),
		Stats:       uc.ledger.Stats(),
		Alerts:      alerts,
	}
}

// DownloadValuationReport renderiza el reporte y devuelve sus bytes y un nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadValuationReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	report := uc.Build()
	pdfBytes, err = uc.generator.GenerateValuationReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar: %w", err)
	}
	return pdfBytes, fmt.Sprintf("valorizacion-%s.pdf", report.GeneratedAt.Format("2006-01-02")), nil
}
