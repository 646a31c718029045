package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

var _ repository.LossRepository = (*LossRepo)(nil)

// LossRepo implementación del puerto LossRepository sobre PostgreSQL.
type LossRepo struct {
	q Querier
}

// NewLossRepository construye el adaptador de persistencia para mermas.
func NewLossRepository(q Querier) *LossRepo {
	return &LossRepo{q: q}
}

// Create inserta una merma. El registro es append-only.
func (r *LossRepo) Create(l *entity.Loss) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mermas (id, descripcion, monto, fecha_hora)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.Description, l.Amount, l.Timestamp)
	if err != nil {
		return fmt.Errorf("insert merma: %w", err)
	}
	return nil
}

// ListToday lista las mermas del día actual, más recientes primero.
func (r *LossRepo) ListToday() ([]*entity.Loss, error) {
	query := `
		SELECT id, descripcion, monto, fecha_hora
		FROM mermas
		WHERE fecha_hora::date = CURRENT_DATE
		ORDER BY fecha_hora DESC`
	return r.list(query)
}

// ListByDateRange lista las mermas dentro del rango de fechas inclusivo.
func (r *LossRepo) ListByDateRange(from, to time.Time) ([]*entity.Loss, error) {
	query := `
		SELECT id, descripcion, monto, fecha_hora
		FROM mermas
		WHERE fecha_hora::date BETWEEN $1::date AND $2::date
		ORDER BY fecha_hora DESC`
	return r.list(query, from, to)
}

func (r *LossRepo) list(query string, args ...any) ([]*entity.Loss, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mermas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Loss
	for rows.Next() {
		var l entity.Loss
		if err := rows.Scan(&l.ID, &l.Description, &l.Amount, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan merma: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
