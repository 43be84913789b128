package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string // único (chequeo best-effort + constraint en DB)
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ADMIN, USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
