package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "ADMIN"
	RoleCajero = "CAJERO"
)

// User representa un operador del sistema (dueño o cajero).
type User struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, CAJERO
	Active       bool
	CreatedAt    time.Time
}
