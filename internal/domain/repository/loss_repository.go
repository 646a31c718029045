package repository

import (
	"time"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
)

// LossRepository define el puerto de persistencia para mermas (append-only).
type LossRepository interface {
	Create(l *entity.Loss) error
	ListToday() ([]*entity.Loss, error)
	ListByDateRange(from, to time.Time) ([]*entity.Loss, error)
}
