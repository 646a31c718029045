package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind tipo de movimiento de caja.
type MovementKind string

const (
	MovIngreso MovementKind = "INGRESO"
	MovCambio  MovementKind = "CAMBIO"
)

// IsValid reporta si el tipo de movimiento es uno de los valores cerrados.
func (k MovementKind) IsValid() bool {
	return k == MovIngreso || k == MovCambio
}

// CashMovement representa un movimiento de caja (solo inserción, nunca se edita).
type CashMovement struct {
	ID           string
	Kind         MovementKind
	Amount       decimal.Decimal
	Reason       string
	OperatorID   string
	OperatorName string
	Timestamp    time.Time
}
