package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create inserta un gasto. El registro es append-only.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO gastos (id, categoria, monto, descripcion, fecha_hora)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Category, e.Amount, nullIfEmpty(e.Description), e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// ListToday lista los gastos del día actual, más recientes primero.
func (r *ExpenseRepo) ListToday() ([]*entity.Expense, error) {
	query := `
		SELECT id, categoria, monto, COALESCE(descripcion, ''), fecha_hora
		FROM gastos
		WHERE fecha_hora::date = CURRENT_DATE
		ORDER BY fecha_hora DESC`
	return r.list(query)
}

// ListByDateRange lista los gastos dentro del rango de fechas inclusivo.
func (r *ExpenseRepo) ListByDateRange(from, to time.Time) ([]*entity.Expense, error) {
	query := `
		SELECT id, categoria, monto, COALESCE(descripcion, ''), fecha_hora
		FROM gastos
		WHERE fecha_hora::date BETWEEN $1::date AND $2::date
		ORDER BY fecha_hora DESC`
	return r.list(query, from, to)
}

func (r *ExpenseRepo) list(query string, args ...any) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Description, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
