package sales

import (
	"github.com/shopspring/decimal"

	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
)

// Cart acumula las líneas de una venta en curso antes de confirmarla.
// Es estado transitorio en memoria: un operador, un carrito, sin persistencia
// hasta Commit. El total se recalcula desde las líneas en cada lectura en vez
// de mantener un contador incremental, así no puede acumular deriva.
type Cart struct {
	items []entity.SaleItem
}

// NewCart crea un carrito vacío.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem agrega una línea al carrito resolviendo el precio activo del producto
// y capturando nombre y unidad de venta en este instante.
func (c *Cart) AddItem(p *entity.Product, qty decimal.Decimal) error {
	if p == nil {
		return domain.ErrNotFound
	}
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	c.items = append(c.items, entity.SaleItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		Unit:        p.Unit(),
		Subtotal:    qty.Mul(p.ActivePrice()),
	})
	return nil
}

// RemoveItem quita la línea en la posición i. Fuera de rango es un no-op.
func (c *Cart) RemoveItem(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.items = nil
}

// Items devuelve una copia de las líneas acumuladas.
func (c *Cart) Items() []entity.SaleItem {
	out := make([]entity.SaleItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len devuelve el número de líneas.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total suma los subtotales de las líneas. Nunca negativo.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.items {
		total = total.Add(c.items[i].Subtotal)
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
