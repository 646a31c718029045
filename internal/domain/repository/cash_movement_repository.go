package repository

import (
	"time"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
)

// CashMovementRepository define el puerto de persistencia para movimientos de caja.
// Registro append-only: sin updates ni deletes.
type CashMovementRepository interface {
	Create(m *entity.CashMovement) error
	ListToday() ([]*entity.CashMovement, error)
	ListByDateRange(from, to time.Time) ([]*entity.CashMovement, error)
}
