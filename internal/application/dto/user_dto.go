package dto

import (
	"time"

	"github.com/tu-usuario/erp-backend/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// Role vacío se resuelve a employee; IsActive nil se resuelve a true.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

// Validate reglas de campo para CreateUserRequest.
func (r CreateUserRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email es requerido"})
	} else if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email no válido"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password es requerido"})
	} else if len(r.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "password debe tener al menos 8 caracteres"})
	}
	errs = requireString(errs, "name", r.Name, 2)
	if r.Role != "" && !entity.ValidRole(r.Role) {
		errs = append(errs, FieldError{Field: "role", Message: "role debe ser admin, manager o employee"})
	}
	return errs
}

// UpdateUserRequest entrada parcial para actualizar un usuario.
// Campos nil no se modifican; Password presente provoca re-hash.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// Validate reglas de campo para UpdateUserRequest.
func (r UpdateUserRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email != nil && !validEmail(*r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email no válido"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "password debe tener al menos 8 caracteres"})
	}
	if r.Name != nil && len(*r.Name) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "name es demasiado corto"})
	}
	if r.Role != nil && !entity.ValidRole(*r.Role) {
		errs = append(errs, FieldError{Field: "role", Message: "role debe ser admin, manager o employee"})
	}
	return errs
}

// UserResponse salida de un usuario. Nunca incluye el hash del password.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse convierte la entidad a su representación pública (sin password).
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
