package repository

import (
	"time"

	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Venta y sus líneas (DIP).
// Create y CreateItem se ejecutan dentro de una transacción (ver sales.TxRunner)
// para que cabecera y líneas sean visibles juntas o ninguna.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	// Settle marca una venta PENDIENTE como COBRADA. Devuelve false si la venta
	// no existe o ya estaba cobrada (la condición de estado va en el UPDATE).
	Settle(id string) (bool, error)
	ListToday() ([]*entity.Sale, error)
	ListPending() ([]*entity.Sale, error)
	ListByDateRange(from, to time.Time) ([]*entity.Sale, error)
	// ItemsBySaleID devuelve las líneas con el nombre actual del producto
	// (solo para mostrar; el subtotal guardado no cambia).
	ItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
}
