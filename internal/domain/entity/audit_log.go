package entity

import "time"

// Acciones registradas en el log de auditoría.
const (
	AccionRegistrarVenta     = "REGISTRAR_VENTA"
	AccionCobrarVenta        = "COBRAR_VENTA"
	AccionMovimientoCaja     = "MOVIMIENTO_CAJA"
	AccionRegistrarGasto     = "REGISTRAR_GASTO"
	AccionRegistrarMerma     = "REGISTRAR_MERMA"
	AccionCrearProducto      = "CREAR_PRODUCTO"
	AccionEditarProducto     = "EDITAR_PRODUCTO"
	AccionDesactivarProducto = "DESACTIVAR_PRODUCTO"
	AccionCrearUsuario       = "CREAR_USUARIO"
)

// AuditLog registro de auditoría de una operación mutante.
type AuditLog struct {
	ID         string
	OperatorID string
	Action     string
	Entity     string // VENTA, MOVIMIENTO_CAJA, GASTO, MERMA, PRODUCTO, USUARIO
	EntityID   string
	Timestamp  time.Time
}
