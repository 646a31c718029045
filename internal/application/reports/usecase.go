package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

// ReportUseCase calcula los agregados financieros de un rango de fechas.
// La ganancia es base caja: solo cuentan las ventas COBRADAS. Las sumas se
// hacen sobre las filas leídas, sin cachés ni acumuladores incrementales; la
// exactitud depende solo de que las lecturas por rango sean correctas.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	expenseRepo repository.ExpenseRepository
	lossRepo    repository.LossRepository
	pdf         PDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	lossRepo repository.LossRepository,
	pdf PDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, expenseRepo: expenseRepo, lossRepo: lossRepo, pdf: pdf}
}

// Range calcula el reporte del rango calendario inclusivo [from, to].
func (uc *ReportUseCase) Range(ctx context.Context, from, to time.Time) (*dto.RangeReportResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	sales, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	expensesList, err := uc.expenseRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	losses, err := uc.lossRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	gross := decimal.Zero
	collected := decimal.Zero
	byMethod := map[string]decimal.Decimal{
		string(entity.PagoEfectivo): decimal.Zero,
		string(entity.PagoTarjeta):  decimal.Zero,
		string(entity.PagoSinpe):    decimal.Zero,
	}
	for _, s := range sales {
		gross = gross.Add(s.Total)
		if s.State == entity.EstadoCobrada {
			collected = collected.Add(s.Total)
			byMethod[string(s.Method)] = byMethod[string(s.Method)].Add(s.Total)
		}
	}

	totalExpenses := decimal.Zero
	for _, e := range expensesList {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	totalLosses := decimal.Zero
	for _, l := range losses {
		totalLosses = totalLosses.Add(l.Amount)
	}

	return &dto.RangeReportResponse{
		From:           from.Format(dto.DateFormat),
		To:             to.Format(dto.DateFormat),
		GrossSales:     gross,
		CollectedSales: collected,
		PendingSales:   gross.Sub(collected),
		ByMethod:       byMethod,
		TotalExpenses:  totalExpenses,
		TotalLosses:    totalLosses,
		RealProfit:     collected.Sub(totalExpenses).Sub(totalLosses),
		SaleCount:      len(sales),
		ExpenseCount:   len(expensesList),
		LossCount:      len(losses),
	}, nil
}

// Today es el resumen del día para el dashboard: Range sobre [hoy, hoy].
func (uc *ReportUseCase) Today(ctx context.Context) (*dto.RangeReportResponse, error) {
	today := time.Now()
	return uc.Range(ctx, today, today)
}

// RangePDF genera el reporte del rango como PDF (resumen + detalle).
func (uc *ReportUseCase) RangePDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	report, err := uc.Range(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	expensesList, err := uc.expenseRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	losses, err := uc.lossRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	saleRows := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		saleRows = append(saleRows, dto.SaleResponse{
			ID:           s.ID,
			Timestamp:    s.Timestamp.Format(dto.TimeFormat),
			OperatorID:   s.OperatorID,
			OperatorName: s.OperatorName,
			Total:        s.Total,
			Method:       string(s.Method),
			State:        string(s.State),
			CustomerName: s.CustomerName,
		})
	}
	expenseRows := make([]dto.ExpenseResponse, 0, len(expensesList))
	for _, e := range expensesList {
		expenseRows = append(expenseRows, dto.ExpenseResponse{
			ID:          e.ID,
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
			Timestamp:   e.Timestamp.Format(dto.TimeFormat),
		})
	}
	lossRows := make([]dto.LossResponse, 0, len(losses))
	for _, l := range losses {
		lossRows = append(lossRows, dto.LossResponse{
			ID:          l.ID,
			Description: l.Description,
			Amount:      l.Amount,
			Timestamp:   l.Timestamp.Format(dto.TimeFormat),
		})
	}

	return uc.pdf.Generate(report, saleRows, expenseRows, lossRows)
}
