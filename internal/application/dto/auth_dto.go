package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate reglas de campo para LoginRequest.
func (r LoginRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email es requerido"})
	} else if !validEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email no válido"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password es requerido"})
	}
	return errs
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest entrada para registro (solo admin). Role vacío se resuelve a employee.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Validate reglas de campo para RegisterRequest. Delegado a CreateUserRequest:
// registro y alta de usuario comparten el mismo contrato de entrada.
func (r RegisterRequest) Validate() []FieldError {
	return CreateUserRequest{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Role:     r.Role,
	}.Validate()
}
