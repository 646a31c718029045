package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount valida un monto ingresado por el usuario y lo convierte a decimal.
// Acepta "." o "," como separador decimal. Todo monto del sistema (ventas,
// movimientos de caja, gastos, mermas) pasa por esta única regla.
func ParseAmount(s string) (decimal.Decimal, error) {
	return parsePositive(s, ErrNonPositiveAmount)
}

// ParseQuantity valida una cantidad de venta (kg o unidades).
func ParseQuantity(s string) (decimal.Decimal, error) {
	return parsePositive(s, ErrInvalidQuantity)
}

func parsePositive(s string, nonPositive error) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrMissingField
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return decimal.Zero, nonPositive
	}
	return d, nil
}
