package repository

import "github.com/sellcontrol/backoffice-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// Deactivate da de baja lógica; los productos nunca se borran porque las
	// líneas de venta los referencian por id.
	Deactivate(id string) error
	ListActive() ([]*entity.Product, error)
	// SearchActive filtra por nombre normalizado (sin tildes, sin mayúsculas).
	SearchActive(normalizedQuery string) ([]*entity.Product, error)
}
