package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loss representa una merma: pérdida de inventario (producto dañado, vencido).
// El monto es aproximado; la merma no descuenta stock ni figura en ventas.
type Loss struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Timestamp   time.Time
}
