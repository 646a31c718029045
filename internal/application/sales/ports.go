package sales

import (
	"context"

	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un SaleRepository atado a una transacción.
// Cabecera y líneas de la venta se insertan dentro del mismo fn: o se
// confirman juntas o no queda nada visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}
