package dto

import "regexp"

// Validación explícita por shape de entrada: cada request implementa Validate()
// devolviendo la lista de errores de campo. Los handlers la invocan antes de
// tocar cualquier lógica; una lista no vacía corta la petición con 400.

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}

func requireString(errs []FieldError, field, value string, minLen int) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: field + " es requerido"})
	}
	if len(value) < minLen {
		return append(errs, FieldError{Field: field, Message: field + " es demasiado corto"})
	}
	return errs
}
