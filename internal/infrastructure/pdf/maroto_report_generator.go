// Package pdf implementa la exportación del reporte de rango a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Rango del reporte           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ventas brutas / cobradas / pendientes             │
//	│           desglose por método / gastos / mermas / ganancia  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA VENTAS: Fecha | Operador | Método | Estado | Total   │
//	│  TABLA GASTOS: Fecha | Categoría | Descripción | Monto      │
//	│  TABLA MERMAS: Fecha | Descripción | Monto                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	businessName string
}

var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator(businessName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{businessName: businessName}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(
	report *dto.RangeReportResponse,
	sales []dto.SaleResponse,
	expenses []dto.ExpenseResponse,
	losses []dto.LossResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow(fmt.Sprintf("VENTAS (%d)", report.SaleCount)))
	m.AddRows(salesHeaderRow())
	for _, s := range sales {
		m.AddRows(saleRow(s))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow(fmt.Sprintf("GASTOS (%d)", report.ExpenseCount)))
	m.AddRows(expensesHeaderRow())
	for _, e := range expenses {
		m.AddRows(expenseRow(e))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow(fmt.Sprintf("MERMAS (%d)", report.LossCount)))
	m.AddRows(lossesHeaderRow())
	for _, l := range losses {
		m.AddRows(lossRow(l))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y rango del reporte (der).
func headerRow(businessName string, report *dto.RangeReportResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas y ganancia real", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RANGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.From+"  a  "+report.To, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRows: bloque de agregados del rango, etiqueta a la izquierda y monto
// a la derecha, con la ganancia real resaltada al final.
func summaryRows(report *dto.RangeReportResponse) []core.Row {
	rows := []core.Row{
		summaryRow("Ventas brutas", report.GrossSales, false),
		summaryRow("Ventas cobradas", report.CollectedSales, false),
		summaryRow("Fiado pendiente", report.PendingSales, false),
	}
	for _, method := range []string{"EFECTIVO", "TARJETA", "SINPE"} {
		if amount, ok := report.ByMethod[method]; ok {
			rows = append(rows, summaryRow("    Cobrado "+method, amount, false))
		}
	}
	rows = append(rows,
		summaryRow("Gastos", report.TotalExpenses.Neg(), false),
		summaryRow("Mermas", report.TotalLosses.Neg(), false),
		summaryRow("GANANCIA REAL", report.RealProfit, true),
	)
	return rows
}

func summaryRow(label string, amount decimal.Decimal, grand bool) core.Row {
	labelProps := props.Text{Size: 9, Top: 1, Left: 2}
	valueProps := props.Text{Size: 9, Align: align.Right, Top: 1, Right: 2}
	if grand {
		labelProps.Style = fontstyle.Bold
		labelProps.Color = colorPrimary
		labelProps.Size = 11
		valueProps.Style = fontstyle.Bold
		valueProps.Color = colorPrimary
		valueProps.Size = 11
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, labelProps)),
		col.New(4).Add(text.New("₡"+formatMoney(amount.StringFixed(2)), valueProps)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func salesHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Fecha", 3, align.Left),
		tableHeader("Operador", 3, align.Left),
		tableHeader("Método", 2, align.Center),
		tableHeader("Estado", 2, align.Center),
		tableHeader("Total", 2, align.Right),
	)
}

func saleRow(s dto.SaleResponse) core.Row {
	return row.New(5).Add(
		tableCell(s.Timestamp, 3, align.Left),
		tableCell(s.OperatorName, 3, align.Left),
		tableCell(s.Method, 2, align.Center),
		tableCell(s.State, 2, align.Center),
		tableCell("₡"+formatMoney(s.Total.StringFixed(2)), 2, align.Right),
	)
}

func expensesHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Fecha", 3, align.Left),
		tableHeader("Categoría", 2, align.Left),
		tableHeader("Descripción", 5, align.Left),
		tableHeader("Monto", 2, align.Right),
	)
}

func expenseRow(e dto.ExpenseResponse) core.Row {
	return row.New(5).Add(
		tableCell(e.Timestamp, 3, align.Left),
		tableCell(e.Category, 2, align.Left),
		tableCell(e.Description, 5, align.Left),
		tableCell("₡"+formatMoney(e.Amount.StringFixed(2)), 2, align.Right),
	)
}

func lossesHeaderRow() core.Row {
	return row.New(6).Add(
		tableHeader("Fecha", 3, align.Left),
		tableHeader("Descripción", 7, align.Left),
		tableHeader("Monto", 2, align.Right),
	)
}

func lossRow(l dto.LossResponse) core.Row {
	return row.New(5).Add(
		tableCell(l.Timestamp, 3, align.Left),
		tableCell(l.Description, 7, align.Left),
		tableCell("₡"+formatMoney(l.Amount.StringFixed(2)), 2, align.Right),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// formatMoney inserta puntos de miles en la parte entera de un string
// numérico con decimales. Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, decPart := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, decPart = s[:i], s[i+1:]
			break
		}
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+len(decPart)+2)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	if decPart != "" {
		buf = append(buf, ',')
		buf = append(buf, decPart...)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
