package cashbox

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

// CashboxUseCase registra movimientos de caja (ingresos y ajustes de cambio).
type CashboxUseCase struct {
	movementRepo repository.CashMovementRepository
	auditRepo    repository.AuditRepository
	log          *logger.Logger
}

// NewCashboxUseCase construye el caso de uso.
func NewCashboxUseCase(
	movementRepo repository.CashMovementRepository,
	auditRepo repository.AuditRepository,
	log *logger.Logger,
) *CashboxUseCase {
	return &CashboxUseCase{movementRepo: movementRepo, auditRepo: auditRepo, log: log}
}

// Register valida y persiste un movimiento de caja. Requiere sesión activa.
// Toda validación ocurre antes de escribir: si algo falla, no hay fila.
func (uc *CashboxUseCase) Register(ctx context.Context, operatorID string, in dto.CreateCashMovementRequest) (*dto.CashMovementResponse, error) {
	kind := entity.MovementKind(in.Kind)
	if !kind.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrMissingField
	}
	amount, err := domain.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	if operatorID == "" {
		return nil, domain.ErrNoActiveSession
	}

	m := &entity.CashMovement{
		Kind:       kind,
		Amount:     amount,
		Reason:     strings.TrimSpace(in.Reason),
		OperatorID: operatorID,
		Timestamp:  time.Now(),
	}
	if err := uc.movementRepo.Create(m); err != nil {
		return nil, err
	}

	if err := uc.auditRepo.Record(operatorID, entity.AccionMovimientoCaja, "MOVIMIENTO_CAJA", m.ID); err != nil {
		uc.log.Warn().Err(err).Msg("auditoría no registrada")
	}
	uc.log.Info().
		Str("movement_id", m.ID).
		Str("kind", string(kind)).
		Str("amount", amount.StringFixed(2)).
		Msg("movimiento de caja registrado")

	return toMovementResponse(m), nil
}

// ListToday devuelve los movimientos del día, más reciente primero.
func (uc *CashboxUseCase) ListToday(ctx context.Context) ([]dto.CashMovementResponse, error) {
	list, err := uc.movementRepo.ListToday()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByDateRange devuelve los movimientos del rango de fechas inclusivo.
func (uc *CashboxUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]dto.CashMovementResponse, error) {
	list, err := uc.movementRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.CashMovement) *dto.CashMovementResponse {
	return &dto.CashMovementResponse{
		ID:           m.ID,
		Kind:         string(m.Kind),
		Amount:       m.Amount,
		Reason:       m.Reason,
		OperatorID:   m.OperatorID,
		OperatorName: m.OperatorName,
		Timestamp:    m.Timestamp.Format(dto.TimeFormat),
	}
}

func toMovementResponses(list []*entity.CashMovement) []dto.CashMovementResponse {
	out := make([]dto.CashMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out
}
