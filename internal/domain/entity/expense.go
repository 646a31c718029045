package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto del negocio (registro append-only).
// Los gastos no llevan atribución de operador en el sistema actual.
type Expense struct {
	ID          string
	Category    string // ABASTECIMIENTO, EMPLEADOS
	Amount      decimal.Decimal
	Description string
	Timestamp   time.Time
}
