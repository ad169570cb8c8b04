// Package pdf genera el informe PDF de estadísticas de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MENSUAL: Mes | Órdenes | Monto                       │
//	│  TABLA ANUAL:   Año | Órdenes | Monto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COLA DE PRODUCCIÓN: Producto | Cantidad                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Pedidos-dashboard/internal/application/analytics"
	"github.com/jhoicas/Pedidos-dashboard/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ analytics.StatisticsReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.StatisticsReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	money moneyFormatter
}

// NewMarotoReportGenerator construye el generador. lang (BCP 47) y cur (ISO 4217)
// definen el formato de los montos; valores inválidos caen en fr / EUR.
func NewMarotoReportGenerator(lang, cur string) *MarotoReportGenerator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.French
	}
	unit, err := currency.ParseISO(cur)
	if err != nil {
		unit = currency.EUR
	}
	return &MarotoReportGenerator{money: newMoneyFormatter(tag, unit)}
}

// GenerateStatisticsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStatisticsPDF(_ context.Context, report dto.StatisticsReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("Ventas por mes (últimos 12 meses)"))
	m.AddRows(tableHeaderRow("Mes"))
	m.AddRows(g.periodRows(report.Monthly)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitleRow("Ventas por año"))
	m.AddRows(tableHeaderRow("Año"))
	m.AddRows(g.periodRows(report.Yearly)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow("Cola de producción"))
	m.AddRows(queueRows(report.ProductionQueue)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report dto.StatisticsReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow(periodLabel string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(periodLabel, 4, align.Left),
		h("Órdenes", 4, align.Center),
		h("Monto", 4, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoReportGenerator) periodRows(stats []dto.PeriodStatDTO) []core.Row {
	if len(stats) == 0 {
		return []core.Row{emptyRow()}
	}
	result := make([]core.Row, 0, len(stats))
	for _, s := range stats {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(s.Period, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", s.OrderCount), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(g.money.format(s.TotalAmount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func queueRows(queue []dto.QueueProductDTO) []core.Row {
	if len(queue) == 0 {
		return []core.Row{emptyRow()}
	}
	result := make([]core.Row, 0, len(queue))
	for i, q := range queue {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d.", i+1), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(8).Add(text.New(q.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", q.TotalQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("Sin datos", props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// moneyFormatter formatea montos con los separadores del idioma y el símbolo
// de la moneda: fr/EUR → "1 234,50 €".
type moneyFormatter struct {
	printer *message.Printer
	symbol  string
}

func newMoneyFormatter(tag language.Tag, unit currency.Unit) moneyFormatter {
	p := message.NewPrinter(tag)
	return moneyFormatter{printer: p, symbol: p.Sprint(currency.Symbol(unit))}
}

func (m moneyFormatter) format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return m.printer.Sprintf("%.2f", f) + " " + m.symbol
}
