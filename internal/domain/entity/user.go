package entity

import "time"

// Roles válidos para User. Conjunto cerrado, sin jerarquía:
// admin no hereda implícitamente los permisos de manager.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Roles lista el conjunto cerrado de roles.
var Roles = []string{RoleAdmin, RoleManager, RoleEmployee}

// ValidRole indica si role pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, employee
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
