package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod método de pago de una venta.
type PaymentMethod string

const (
	PagoEfectivo PaymentMethod = "EFECTIVO"
	PagoTarjeta  PaymentMethod = "TARJETA"
	PagoSinpe    PaymentMethod = "SINPE"
)

// IsValid reporta si el método de pago es uno de los valores cerrados.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PagoEfectivo, PagoTarjeta, PagoSinpe:
		return true
	}
	return false
}

// SaleState estado de cobro de una venta.
// La única transición permitida es PENDIENTE -> COBRADA; COBRADA es terminal.
type SaleState string

const (
	EstadoCobrada   SaleState = "COBRADA"
	EstadoPendiente SaleState = "PENDIENTE"
)

// Sale representa una venta registrada (cabecera).
// Total siempre es la suma de los subtotales de sus líneas; se recalcula al
// confirmar y no cambia después.
type Sale struct {
	ID           string
	Timestamp    time.Time
	OperatorID   string
	OperatorName string // nombre del cajero, resuelto en la lectura
	Total        decimal.Decimal
	Method       PaymentMethod
	State        SaleState
	CustomerName string // solo para fiados (PENDIENTE)
}

// SaleItem representa una línea de venta. Captura nombre y unidad del producto
// al momento de la venta: ediciones posteriores del catálogo no alteran el histórico.
type SaleItem struct {
	ID          string
	SaleID      string
	Line        int // posición en el carrito, desde 1
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Unit        SaleUnit
	Subtotal    decimal.Decimal
}
