package cashbox_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellcontrol/backoffice-api/internal/application/cashbox"
	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.CashMovement
}

// Create asigna el ID igual que el adaptador real.
func (r *fakeMovementRepo) Create(m *entity.CashMovement) error {
	if m.ID == "" {
		m.ID = fmt.Sprintf("mov-%d", len(r.movements)+1)
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListToday() ([]*entity.CashMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.CashMovement, error) {
	return r.movements, nil
}

type fakeAuditRepo struct {
	records []string
}

func (r *fakeAuditRepo) Record(operatorID, action, entity, entityID string) error {
	r.records = append(r.records, action)
	return nil
}

func buildCashboxUseCase() (*cashbox.CashboxUseCase, *fakeMovementRepo, *fakeAuditRepo) {
	repo := &fakeMovementRepo{}
	audit := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return cashbox.NewCashboxUseCase(repo, audit, log), repo, audit
}

// ──────────────────────────────────────────────────────────────────────────────
// Register: toda validación ocurre antes de escribir
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_IngresoValido(t *testing.T) {
	uc, repo, audit := buildCashboxUseCase()

	out, err := uc.Register(context.Background(), "op-1", dto.CreateCashMovementRequest{
		Kind:   "INGRESO",
		Amount: "5000,50",
		Reason: "fondo inicial del día",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("5000.50")),
		"la coma decimal se acepta como separador")
	assert.Equal(t, "op-1", out.OperatorID)

	require.Len(t, repo.movements, 1)
	assert.Contains(t, audit.records, entity.AccionMovimientoCaja)
}

func TestRegister_CambioValido(t *testing.T) {
	uc, repo, _ := buildCashboxUseCase()

	out, err := uc.Register(context.Background(), "op-1", dto.CreateCashMovementRequest{
		Kind:   "CAMBIO",
		Amount: "2000",
		Reason: "cambio para la caja",
	})
	require.NoError(t, err)
	assert.Equal(t, "CAMBIO", out.Kind)
	assert.Len(t, repo.movements, 1)
}

func TestRegister_TipoDesconocidoRechazado(t *testing.T) {
	uc, repo, _ := buildCashboxUseCase()

	_, err := uc.Register(context.Background(), "op-1", dto.CreateCashMovementRequest{
		Kind:   "EGRESO",
		Amount: "1000",
		Reason: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.movements, "nada se escribe si la validación falla")
}

func TestRegister_MotivoVacioRechazado(t *testing.T) {
	uc, repo, _ := buildCashboxUseCase()

	_, err := uc.Register(context.Background(), "op-1", dto.CreateCashMovementRequest{
		Kind:   "INGRESO",
		Amount: "1000",
		Reason: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Empty(t, repo.movements)
}

func TestRegister_MontoInvalidoRechazado(t *testing.T) {
	uc, repo, _ := buildCashboxUseCase()

	_, err := uc.Register(context.Background(), "op-1", dto.CreateCashMovementRequest{
		Kind:   "INGRESO",
		Amount: "abc",
		Reason: "fondo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, repo.movements)
}

func TestRegister_MontoNegativoRechazado(t *testing.T) {
	uc, repo, _ := buildCashboxUseCase()

	_, err := uc.Register(context.Background(), "op-1", dto.CreateCashMovementRequest{
		Kind:   "INGRESO",
		Amount: "-100",
		Reason: "fondo",
	})
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	assert.Empty(t, repo.movements)
}

func TestRegister_SinOperadorRetornaSinSesion(t *testing.T) {
	uc, repo, _ := buildCashboxUseCase()

	_, err := uc.Register(context.Background(), "", dto.CreateCashMovementRequest{
		Kind:   "INGRESO",
		Amount: "1000",
		Reason: "fondo",
	})
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
	assert.Empty(t, repo.movements)
}
