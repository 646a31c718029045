package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, nombre_normalizado, tipo, precio_por_kg, precio_por_unidad, activo, creado_en`

// Create persiste un nuevo producto. nombre_normalizado (sin tildes,
// minúsculas) se deriva aquí del nombre para la búsqueda.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO productos (id, nombre, nombre_normalizado, tipo, precio_por_kg, precio_por_unidad, activo, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, domain.NormalizeName(product.Name), string(product.Type),
		product.PricePerKg, product.PricePerUnit, product.Active, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1`
	product, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return product, nil
}

// Update actualiza nombre, tipo y precio.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE productos
		SET nombre = $2,
		    nombre_normalizado = $3,
		    tipo = $4,
		    precio_por_kg = $5,
		    precio_por_unidad = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, domain.NormalizeName(product.Name), string(product.Type),
		product.PricePerKg, product.PricePerUnit,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Deactivate da de baja lógica un producto.
func (r *ProductRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE productos SET activo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListActive lista los productos activos ordenados por nombre.
func (r *ProductRepo) ListActive() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE activo ORDER BY nombre`
	return r.list(query)
}

// SearchActive filtra activos por nombre normalizado (el caller normaliza el término).
func (r *ProductRepo) SearchActive(normalizedQuery string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM productos
		WHERE activo AND nombre_normalizado LIKE '%' || $1 || '%'
		ORDER BY nombre`
	return r.list(query, normalizedQuery)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, product)
	}
	return list, rows.Err()
}

// scanProduct decodifica una fila validando el invariante de precio: un
// producto activo tiene exactamente uno de los dos precios. Una fila que
// viole eso es un dato corrupto y se reporta, no se mapea en silencio.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var ptype, normalized string
	if err := row.Scan(
		&p.ID, &p.Name, &normalized, &ptype,
		&p.PricePerKg, &p.PricePerUnit, &p.Active, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Type = entity.ProductType(ptype)
	if p.Active && p.PricePerKg.Valid == p.PricePerUnit.Valid {
		return nil, fmt.Errorf("producto %s: debe tener exactamente un precio (kg o unidad)", p.ID)
	}
	return &p, nil
}
