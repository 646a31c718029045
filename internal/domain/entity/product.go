package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType clasifica los productos de la verdulería.
type ProductType string

const (
	TypeFruta   ProductType = "FRUTA"
	TypeVerdura ProductType = "VERDURA"
	TypeOtro    ProductType = "OTRO"
)

// IsValid reporta si el tipo es uno de los valores cerrados.
func (t ProductType) IsValid() bool {
	switch t {
	case TypeFruta, TypeVerdura, TypeOtro:
		return true
	}
	return false
}

// SaleUnit indica cómo se vende un producto: por peso o por unidad.
type SaleUnit string

const (
	UnitKg     SaleUnit = "KG"
	UnitUnidad SaleUnit = "UNIDAD"
)

// Product representa un producto del catálogo.
// Un producto se vende por kg O por unidad, nunca ambos: exactamente uno de
// PricePerKg / PricePerUnit está presente (y > 0) mientras el producto está activo.
type Product struct {
	ID           string
	Name         string
	Type         ProductType
	PricePerKg   decimal.NullDecimal
	PricePerUnit decimal.NullDecimal
	Active       bool
	CreatedAt    time.Time
}

// SoldByWeight reporta si el producto se vende por kg.
func (p *Product) SoldByWeight() bool {
	return p.PricePerKg.Valid && p.PricePerKg.Decimal.IsPositive()
}

// ActivePrice devuelve el precio vigente del producto (por kg o por unidad).
func (p *Product) ActivePrice() decimal.Decimal {
	if p.SoldByWeight() {
		return p.PricePerKg.Decimal
	}
	if p.PricePerUnit.Valid {
		return p.PricePerUnit.Decimal
	}
	return decimal.Zero
}

// Unit devuelve la unidad de venta derivada del precio activo.
func (p *Product) Unit() SaleUnit {
	if p.SoldByWeight() {
		return UnitKg
	}
	return UnitUnidad
}
