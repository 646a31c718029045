package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrMissingField      = errors.New("campo obligatorio vacío")
	ErrInvalidAmount     = errors.New("monto no válido")
	ErrNonPositiveAmount = errors.New("el monto debe ser mayor a 0")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor a 0")
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrNoActiveSession   = errors.New("no hay sesión activa")
	ErrNotPending        = errors.New("la venta no está pendiente")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
)
