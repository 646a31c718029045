package dto

import "github.com/shopspring/decimal"

// RangeReportResponse reporte de ganancia real sobre un rango de fechas inclusivo.
// La ganancia es base caja: solo las ventas COBRADAS cuentan; el fiado pendiente
// queda fuera a propósito para no inflar la posición de efectivo.
type RangeReportResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	GrossSales     decimal.Decimal `json:"gross_sales"`     // todas las ventas del rango
	CollectedSales decimal.Decimal `json:"collected_sales"` // solo COBRADA
	PendingSales   decimal.Decimal `json:"pending_sales"`   // gross - collected

	ByMethod map[string]decimal.Decimal `json:"by_method"` // COBRADA, por método de pago

	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalLosses   decimal.Decimal `json:"total_losses"`
	RealProfit    decimal.Decimal `json:"real_profit"` // collected - expenses - losses

	SaleCount    int `json:"sale_count"`
	ExpenseCount int `json:"expense_count"`
	LossCount    int `json:"loss_count"`
}
