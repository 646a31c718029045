package dto

import "github.com/shopspring/decimal"

// SaleItemRequest línea del carrito: producto y cantidad tal como la tecleó el
// cajero (la cantidad viaja como texto y se valida con las reglas de montos).
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// CreateSaleRequest body para POST /api/sales.
// Credit=true registra la venta fiada (PENDIENTE); CustomerName solo aplica en ese caso.
type CreateSaleRequest struct {
	Method       string            `json:"method"` // EFECTIVO | TARJETA | SINPE
	Credit       bool              `json:"credit"`
	CustomerName string            `json:"customer_name,omitempty"`
	Items        []SaleItemRequest `json:"items"`
}

// SaleResponse venta en respuestas.
type SaleResponse struct {
	ID           string          `json:"id"`
	Timestamp    string          `json:"timestamp"`
	OperatorID   string          `json:"operator_id"`
	OperatorName string          `json:"operator_name,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Method       string          `json:"method"`
	State        string          `json:"state"` // COBRADA | PENDIENTE
	CustomerName string          `json:"customer_name,omitempty"`
}

// SaleItemResponse línea de venta en respuestas.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"` // KG | UNIDAD
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleDetailResponse venta con sus líneas para GET /api/sales/:id.
type SaleDetailResponse struct {
	SaleResponse
	Items []SaleItemResponse `json:"items"`
}
