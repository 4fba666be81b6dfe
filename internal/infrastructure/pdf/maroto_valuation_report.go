// Package pdf renderiza el reporte de valorización del inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  RESUMEN: artículos | agotados | bajos | valor total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Artículos | Unidades | Valor | Alerta    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: Artículo | Stock | Mínimo | Nivel                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/jhoicas/Inventario-entregas/internal/application/inventory"
	"github.com/jhoicas/Inventario-entregas/internal/domain/entity"
	"github.com/jhoicas/Inventario-entregas/internal/domain/inventory"
	"github.com/jhoicas/Inventario-entregas/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ appinventory.ValuationReportGenerator = (*MarotoValuationReport)(nil)

// MarotoValuationReport implementa inventory.ValuationReportGenerator.
type MarotoValuationReport struct {
	money *money.Formatter
	title string
}

// NewMarotoValuationReport construye el generador; title va en el encabezado y en los metadatos.
func NewMarotoValuationReport(formatter *money.Formatter, title string) *MarotoValuationReport {
	if title == "" {
		title = "Valorización de inventario"
	}
	return &MarotoValuationReport{money: formatter, title: title}
}

// GenerateValuationReport genera el PDF y devuelve sus bytes.
func (g *MarotoValuationReport) GenerateValuationReport(_ context.Context, report appinventory.ValuationReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(g.summaryRow(report.Stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(categoryHeaderRow())
	m.AddRows(g.categoryRows(report.Categories)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(alertRows(report.Alerts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoValuationReport) headerRow(report appinventory.ValuationReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Moneda: "+g.money.Currency(), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoValuationReport) summaryRow(s appinventory.Stats) core.Row {
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: c, Top: 5}),
		)
	}
	return row.New(14).Add(
		cell("Artículos", strconv.Itoa(s.Total), colorPrimary),
		cell("Agotados", strconv.Itoa(s.Out), colorAlert),
		cell("Stock bajo", strconv.Itoa(s.Low), colorAlert),
		cell("Valor total", g.money.Format(s.TotalValue), colorPrimary),
	)
}

func categoryHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 4, align.Left),
		h("Artículos", 2, align.Center),
		h("Unidades", 2, align.Center),
		h("Valor", 3, align.Right),
		h("Alerta", 1, align.Center),
	)
}

func (g *MarotoValuationReport) categoryRows(categories []appinventory.CategorySummary) []core.Row {
	rows := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		alert, alertColor := "", colorGray
		if c.HasAlert {
			alert, alertColor = "!", colorAlert
		}
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(c.Category.Label, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(c.ItemCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(c.TotalStock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(g.money.Format(c.TotalValue), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(alert, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: alertColor, Top: 1})),
		))
	}
	return rows
}

func alertRows(items []entity.InventoryItem) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("ARTÍCULOS QUE REQUIEREN REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	if len(items) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin alertas de stock.", props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	for _, it := range items {
		tier := inventory.Classify(it.Stock, it.MinStock)
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.Stock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.MinStock), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(tierLabel(tier), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorAlert, Top: 1})),
		))
	}
	return rows
}

func tierLabel(t inventory.StockTier) string {
	switch t {
	case inventory.TierOut:
		return "AGOTADO"
	case inventory.TierLow:
		return "BAJO"
	default:
		return "OK"
	}
}
