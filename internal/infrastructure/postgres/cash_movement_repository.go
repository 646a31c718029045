package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo implementación del puerto CashMovementRepository sobre PostgreSQL.
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador de persistencia para movimientos de caja.
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

const movementColumns = `m.id, m.tipo, m.monto, m.motivo, m.usuario_id, u.nombre, m.fecha_hora`

// Create inserta un movimiento de caja. El registro es append-only.
func (r *CashMovementRepo) Create(m *entity.CashMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_caja (id, tipo, monto, motivo, usuario_id, fecha_hora)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, string(m.Kind), m.Amount, m.Reason, m.OperatorID, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento de caja: %w", err)
	}
	return nil
}

// ListToday lista los movimientos del día actual, más recientes primero.
func (r *CashMovementRepo) ListToday() ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movimientos_caja m
		JOIN usuarios u ON u.id = m.usuario_id
		WHERE m.fecha_hora::date = CURRENT_DATE
		ORDER BY m.fecha_hora DESC`
	return r.list(query)
}

// ListByDateRange lista los movimientos dentro del rango de fechas inclusivo.
func (r *CashMovementRepo) ListByDateRange(from, to time.Time) ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movimientos_caja m
		JOIN usuarios u ON u.id = m.usuario_id
		WHERE m.fecha_hora::date BETWEEN $1::date AND $2::date
		ORDER BY m.fecha_hora DESC`
	return r.list(query, from, to)
}

func (r *CashMovementRepo) list(query string, args ...any) ([]*entity.CashMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos de caja: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		var kind string
		if err := rows.Scan(&m.ID, &kind, &m.Amount, &m.Reason, &m.OperatorID, &m.OperatorName, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movimiento de caja: %w", err)
		}
		m.Kind = entity.MovementKind(kind)
		list = append(list, &m)
	}
	return list, rows.Err()
}
