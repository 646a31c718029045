package repository

import (
	"time"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
)

// ExpenseRepository define el puerto de persistencia para gastos (append-only).
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	ListToday() ([]*entity.Expense, error)
	ListByDateRange(from, to time.Time) ([]*entity.Expense, error)
}
