package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	Category    string `json:"category"` // ABASTECIMIENTO | EMPLEADOS
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Timestamp   string          `json:"timestamp"`
}

// CreateLossRequest body para POST /api/losses (merma).
type CreateLossRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"` // monto aproximado de la pérdida
}

// LossResponse merma en respuestas.
type LossResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   string          `json:"timestamp"`
}
