package expenses

import (
	"context"
	"strings"
	"time"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// Categorías de gasto aceptadas.
var validCategories = map[string]bool{
	"ABASTECIMIENTO": true,
	"EMPLEADOS":      true,
}

// ExpenseUseCase registra gastos y mermas (pérdidas de inventario).
// Ninguno de los dos lleva operador en la fila; la auditoría sí lo registra.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	lossRepo    repository.LossRepository
	auditRepo   repository.AuditRepository
	log         *logger.Logger
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(
	expenseRepo repository.ExpenseRepository,
	lossRepo repository.LossRepository,
	auditRepo repository.AuditRepository,
	log *logger.Logger,
) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, lossRepo: lossRepo, auditRepo: auditRepo, log: log}
}

// RegisterExpense valida y persiste un gasto.
func (uc *ExpenseUseCase) RegisterExpense(ctx context.Context, operatorID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !validCategories[in.Category] {
		return nil, domain.ErrInvalidInput
	}
	amount, err := domain.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	e := &entity.Expense{
		Category:    in.Category,
		Amount:      amount,
		Description: strings.TrimSpace(in.Description),
		Timestamp:   time.Now(),
	}
	if err := uc.expenseRepo.Create(e); err != nil {
		return nil, err
	}

	uc.audit(operatorID, entity.AccionRegistrarGasto, "GASTO", e.ID)
	uc.log.Info().Str("expense_id", e.ID).Str("amount", amount.StringFixed(2)).Msg("gasto registrado")
	return toExpenseResponse(e), nil
}

// RegisterLoss valida y persiste una merma. La descripción es obligatoria
// porque es lo único que identifica qué se perdió.
func (uc *ExpenseUseCase) RegisterLoss(ctx context.Context, operatorID string, in dto.CreateLossRequest) (*dto.LossResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, domain.ErrMissingField
	}
	amount, err := domain.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	l := &entity.Loss{
		Description: desc,
		Amount:      amount,
		Timestamp:   time.Now(),
	}
	if err := uc.lossRepo.Create(l); err != nil {
		return nil, err
	}

	uc.audit(operatorID, entity.AccionRegistrarMerma, "MERMA", l.ID)
	uc.log.Info().Str("loss_id", l.ID).Str("amount", amount.StringFixed(2)).Msg("merma registrada")
	return toLossResponse(l), nil
}

// ListExpensesToday devuelve los gastos del día, más reciente primero.
func (uc *ExpenseUseCase) ListExpensesToday(ctx context.Context) ([]dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.ListToday()
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(list), nil
}

// ListExpensesByDateRange devuelve los gastos del rango inclusivo.
func (uc *ExpenseUseCase) ListExpensesByDateRange(ctx context.Context, from, to time.Time) ([]dto.ExpenseResponse, error) {
	list, err := uc.expenseRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(list), nil
}

// ListLossesToday devuelve las mermas del día, más reciente primero.
func (uc *ExpenseUseCase) ListLossesToday(ctx context.Context) ([]dto.LossResponse, error) {
	list, err := uc.lossRepo.ListToday()
	if err != nil {
		return nil, err
	}
	return toLossResponses(list), nil
}

// ListLossesByDateRange devuelve las mermas del rango inclusivo.
func (uc *ExpenseUseCase) ListLossesByDateRange(ctx context.Context, from, to time.Time) ([]dto.LossResponse, error) {
	list, err := uc.lossRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toLossResponses(list), nil
}

func (uc *ExpenseUseCase) audit(operatorID, action, entityKind, entityID string) {
	// Gastos y mermas se pueden registrar sin sesión (responsabilidad compartida
	// en el negocio); solo se audita cuando hay operador identificado.
	if operatorID == "" {
		return
	}
	if err := uc.auditRepo.Record(operatorID, action, entityKind, entityID); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("auditoría no registrada")
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		Timestamp:   e.Timestamp.Format(dto.TimeFormat),
	}
}

func toExpenseResponses(list []*entity.Expense) []dto.ExpenseResponse {
	out := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toExpenseResponse(e))
	}
	return out
}

func toLossResponse(l *entity.Loss) *dto.LossResponse {
	return &dto.LossResponse{
		ID:          l.ID,
		Description: l.Description,
		Amount:      l.Amount,
		Timestamp:   l.Timestamp.Format(dto.TimeFormat),
	}
}

func toLossResponses(list []*entity.Loss) []dto.LossResponse {
	out := make([]dto.LossResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLossResponse(l))
	}
	return out
}
