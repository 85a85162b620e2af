// Package pdf implementa la generación del reporte PDF de alertas de stock
// bajo (una fila por par producto/bodega bajo umbral).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Fecha de generación + total de alertas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Bodega | Stock | Umbral | Días |   │
//	│         Proveedor                                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de la ventana de ventas                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/alerts"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/dto"
)

var _ alerts.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 153, Green: 27, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa alerts.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLowStockReport(
	_ context.Context,
	companyName string,
	report *dto.LowStockAlertsResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de alertas de stock bajo", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, report.TotalAlerts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableAlertRows(report.Alerts) {
		m.AddRows(r)
	}
	if len(report.Alerts) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin alertas: ningún producto activo está bajo su umbral.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: colorGray,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq), fecha y total de alertas (der).
func headerRow(companyName string, total int) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Alertas de stock bajo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Total de alertas: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 8,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Bodega", 2, align.Left),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Días", 1, align.Right),
		h("Proveedor", 2, align.Left),
	)
}

// tableAlertRows: una fila por alerta.
func tableAlertRows(alerts []dto.LowStockAlert) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		days := "—"
		if a.DaysUntilStockout != nil {
			days = strconv.FormatInt(*a.DaysUntilStockout, 10)
		}
		supplier := "—"
		if a.Supplier != nil {
			supplier = a.Supplier.Name
		}
		result = append(result, row.New(7).Add(
			cell(a.SKU, 2, align.Left),
			cell(a.ProductName, 3, align.Left),
			cell(a.WarehouseName, 2, align.Left),
			cell(strconv.FormatInt(a.CurrentStock, 10), 1, align.Right),
			cell(strconv.FormatInt(a.Threshold, 10), 1, align.Right),
			cell(days, 1, align.Right),
			cell(supplier, 2, align.Left),
		))
	}
	return result
}

// footerRow: leyenda de la política de la ventana.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Solo se alertan productos con ventas dentro de la ventana reciente; la proyección de quiebre usa la tasa diaria promedio de esa ventana.", props.Text{
			Size: 7, Top: 2, Color: colorGray,
		}),
	))
}
