package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// Exactamente uno de price_per_kg / price_per_unit debe venir (y ser > 0):
// el producto se vende por peso o por unidad, nunca ambos.
type CreateProductRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"` // FRUTA | VERDURA | OTRO
	PricePerKg   string `json:"price_per_kg,omitempty"`
	PricePerUnit string `json:"price_per_unit,omitempty"`
}

// UpdateProductRequest entrada para editar nombre, tipo o precio.
type UpdateProductRequest struct {
	Name         *string `json:"name,omitempty"`
	Type         *string `json:"type,omitempty"`
	PricePerKg   *string `json:"price_per_kg,omitempty"`
	PricePerUnit *string `json:"price_per_unit,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	PricePerKg   *decimal.Decimal `json:"price_per_kg,omitempty"`
	PricePerUnit *decimal.Decimal `json:"price_per_unit,omitempty"`
	ActivePrice  decimal.Decimal  `json:"active_price"`
	Unit         string           `json:"unit"` // KG | UNIDAD
	Active       bool             `json:"active"`
	CreatedAt    string           `json:"created_at"`
}
