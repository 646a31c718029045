package expenses_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/application/expenses"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (r *fakeExpenseRepo) Create(e *entity.Expense) error {
	if e.ID == "" {
		e.ID = fmt.Sprintf("gasto-%d", len(r.expenses)+1)
	}
	cp := *e
	r.expenses = append(r.expenses, &cp)
	return nil
}

func (r *fakeExpenseRepo) ListToday() ([]*entity.Expense, error) { return r.expenses, nil }
func (r *fakeExpenseRepo) ListByDateRange(from, to time.Time) ([]*entity.Expense, error) {
	return r.expenses, nil
}

type fakeLossRepo struct {
	losses []*entity.Loss
}

func (r *fakeLossRepo) Create(l *entity.Loss) error {
	if l.ID == "" {
		l.ID = fmt.Sprintf("merma-%d", len(r.losses)+1)
	}
	cp := *l
	r.losses = append(r.losses, &cp)
	return nil
}

func (r *fakeLossRepo) ListToday() ([]*entity.Loss, error) { return r.losses, nil }
func (r *fakeLossRepo) ListByDateRange(from, to time.Time) ([]*entity.Loss, error) {
	return r.losses, nil
}

type fakeAuditRepo struct {
	records []string
}

func (r *fakeAuditRepo) Record(operatorID, action, entity, entityID string) error {
	r.records = append(r.records, action)
	return nil
}

func buildExpenseUseCase() (*expenses.ExpenseUseCase, *fakeExpenseRepo, *fakeLossRepo, *fakeAuditRepo) {
	expenseRepo := &fakeExpenseRepo{}
	lossRepo := &fakeLossRepo{}
	audit := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return expenses.NewExpenseUseCase(expenseRepo, lossRepo, audit, log), expenseRepo, lossRepo, audit
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExpense_Valido(t *testing.T) {
	uc, repo, _, audit := buildExpenseUseCase()

	out, err := uc.RegisterExpense(context.Background(), "op-1", dto.CreateExpenseRequest{
		Category:    "ABASTECIMIENTO",
		Amount:      "12500,75",
		Description: "  pedido de verduras  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("12500.75")))
	assert.Equal(t, "pedido de verduras", out.Description, "la descripción se recorta")

	require.Len(t, repo.expenses, 1)
	assert.Contains(t, audit.records, entity.AccionRegistrarGasto)
}

func TestRegisterExpense_DescripcionOpcional(t *testing.T) {
	uc, repo, _, _ := buildExpenseUseCase()

	out, err := uc.RegisterExpense(context.Background(), "op-1", dto.CreateExpenseRequest{
		Category: "EMPLEADOS",
		Amount:   "8000",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Description)
	assert.Len(t, repo.expenses, 1)
}

func TestRegisterExpense_CategoriaDesconocidaRechazada(t *testing.T) {
	uc, repo, _, _ := buildExpenseUseCase()

	_, err := uc.RegisterExpense(context.Background(), "op-1", dto.CreateExpenseRequest{
		Category: "MARKETING",
		Amount:   "1000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.expenses)
}

// Solo existen dos categorías de gasto en el negocio.
func TestRegisterExpense_SoloAbastecimientoYEmpleados(t *testing.T) {
	uc, repo, _, _ := buildExpenseUseCase()

	for _, cat := range []string{"ABASTECIMIENTO", "EMPLEADOS"} {
		_, err := uc.RegisterExpense(context.Background(), "op-1", dto.CreateExpenseRequest{
			Category: cat,
			Amount:   "1000",
		})
		require.NoError(t, err, cat)
	}
	for _, cat := range []string{"SERVICIOS", "PROVEEDOR", "OTRO", ""} {
		_, err := uc.RegisterExpense(context.Background(), "op-1", dto.CreateExpenseRequest{
			Category: cat,
			Amount:   "1000",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, cat)
	}
	assert.Len(t, repo.expenses, 2)
}

func TestRegisterExpense_MontoInvalidoRechazado(t *testing.T) {
	uc, repo, _, _ := buildExpenseUseCase()

	_, err := uc.RegisterExpense(context.Background(), "op-1", dto.CreateExpenseRequest{
		Category: "EMPLEADOS",
		Amount:   "mil",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, repo.expenses)
}

// El gasto no lleva operador en la fila; sin operador igual se registra,
// solo que sin entrada de auditoría.
func TestRegisterExpense_SinOperadorNoAudita(t *testing.T) {
	uc, repo, _, audit := buildExpenseUseCase()

	_, err := uc.RegisterExpense(context.Background(), "", dto.CreateExpenseRequest{
		Category: "ABASTECIMIENTO",
		Amount:   "1000",
	})
	require.NoError(t, err)
	assert.Len(t, repo.expenses, 1)
	assert.Empty(t, audit.records)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mermas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterLoss_Valida(t *testing.T) {
	uc, _, repo, audit := buildExpenseUseCase()

	out, err := uc.RegisterLoss(context.Background(), "op-1", dto.CreateLossRequest{
		Description: "tomates aplastados en bodega",
		Amount:      "3500",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("3500")))

	require.Len(t, repo.losses, 1)
	assert.Contains(t, audit.records, entity.AccionRegistrarMerma)
}

// La descripción de la merma es obligatoria: es lo único que dice qué se perdió.
func TestRegisterLoss_SinDescripcionRechazada(t *testing.T) {
	uc, _, repo, _ := buildExpenseUseCase()

	_, err := uc.RegisterLoss(context.Background(), "op-1", dto.CreateLossRequest{
		Description: "   ",
		Amount:      "3500",
	})
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Empty(t, repo.losses)
}

func TestRegisterLoss_MontoCeroRechazado(t *testing.T) {
	uc, _, repo, _ := buildExpenseUseCase()

	_, err := uc.RegisterLoss(context.Background(), "op-1", dto.CreateLossRequest{
		Description: "producto vencido",
		Amount:      "0",
	})
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	assert.Empty(t, repo.losses)
}
