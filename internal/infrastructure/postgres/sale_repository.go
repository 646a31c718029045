package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	v.id, v.fecha_hora, v.usuario_id, u.nombre, v.total,
	v.metodo_pago, v.estado, COALESCE(v.cliente_nombre, '')`

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ventas (id, fecha_hora, usuario_id, total, metodo_pago, estado, cliente_nombre)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Timestamp, sale.OperatorID, sale.Total,
		string(sale.Method), string(sale.State), nullIfEmpty(sale.CustomerName),
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO detalle_venta (id, venta_id, linea, producto_id, nombre_producto, cantidad, tipo_unidad, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.Line, item.ProductID, item.ProductName,
		item.Quantity, string(item.Unit), item.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert detalle de venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID con el nombre del cajero.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM ventas v JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return sale, nil
}

// Settle marca una venta PENDIENTE como COBRADA. La condición de estado va en
// el WHERE: dos cobros concurrentes no pueden afectar la misma fila dos veces.
func (r *SaleRepo) Settle(id string) (bool, error) {
	query := `UPDATE ventas SET estado = $1 WHERE id = $2 AND estado = $3`
	tag, err := r.q.Exec(context.Background(), query,
		string(entity.EstadoCobrada), id, string(entity.EstadoPendiente))
	if err != nil {
		return false, fmt.Errorf("cobrar venta: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListToday devuelve las ventas del día actual, más reciente primero.
func (r *SaleRepo) ListToday() ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM ventas v JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.fecha_hora::date = CURRENT_DATE
		ORDER BY v.fecha_hora DESC`
	return r.list(query)
}

// ListPending devuelve las ventas fiadas sin cobrar, más reciente primero.
func (r *SaleRepo) ListPending() ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM ventas v JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.estado = '` + string(entity.EstadoPendiente) + `'
		ORDER BY v.fecha_hora DESC`
	return r.list(query)
}

// ListByDateRange devuelve las ventas del rango de fechas calendario inclusivo.
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM ventas v JOIN usuarios u ON u.id = v.usuario_id
		WHERE v.fecha_hora::date BETWEEN $1::date AND $2::date
		ORDER BY v.fecha_hora DESC`
	return r.list(query, from, to)
}

// ItemsBySaleID devuelve las líneas de una venta. El nombre mostrado es el
// actual del catálogo, con el snapshot guardado como respaldo si el producto
// ya no existe; cantidad, unidad y subtotal son siempre el snapshot.
func (r *SaleRepo) ItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT d.id, d.venta_id, d.linea, d.producto_id,
		       COALESCE(p.nombre, d.nombre_producto),
		       d.cantidad, d.tipo_unidad, d.subtotal
		FROM detalle_venta d
		LEFT JOIN productos p ON p.id = d.producto_id
		WHERE d.venta_id = $1
		ORDER BY d.linea`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle de venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		var unit string
		if err := rows.Scan(&it.ID, &it.SaleID, &it.Line, &it.ProductID, &it.ProductName, &it.Quantity, &unit, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		it.Unit = entity.SaleUnit(unit)
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var method, state string
	if err := row.Scan(
		&s.ID, &s.Timestamp, &s.OperatorID, &s.OperatorName, &s.Total,
		&method, &state, &s.CustomerName,
	); err != nil {
		return nil, err
	}
	s.Method = entity.PaymentMethod(method)
	s.State = entity.SaleState(state)
	return &s, nil
}
