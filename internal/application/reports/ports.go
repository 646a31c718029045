package reports

import "github.com/sellcontrol/backoffice-api/internal/application/dto"

// PDFGenerator genera la representación PDF de un reporte de rango.
type PDFGenerator interface {
	Generate(report *dto.RangeReportResponse, sales []dto.SaleResponse, expenses []dto.ExpenseResponse, losses []dto.LossResponse) ([]byte, error)
}
