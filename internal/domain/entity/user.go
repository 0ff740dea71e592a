package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin      = "admin"
	RoleEstoquista = "estoquista"
	RoleVendedor   = "vendedor"
)

// Estados de conta de User.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// User representa um usuário do sistema (pertence a uma Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro no domínio após persistir
	Name         string
	Role         string // admin, estoquista, vendedor
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
