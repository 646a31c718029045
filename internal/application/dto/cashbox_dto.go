package dto

import "github.com/shopspring/decimal"

// CreateCashMovementRequest body para POST /api/cashbox/movements.
// Amount viaja como texto: se valida con las reglas de montos (acepta "," o ".").
type CreateCashMovementRequest struct {
	Kind   string `json:"kind"` // INGRESO | CAMBIO
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

// CashMovementResponse movimiento de caja en respuestas.
type CashMovementResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	OperatorID   string          `json:"operator_id"`
	OperatorName string          `json:"operator_name,omitempty"`
	Timestamp    string          `json:"timestamp"`
}
