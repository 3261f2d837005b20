package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/erp-backend/internal/application/dto"
	"github.com/tu-usuario/erp-backend/internal/domain/entity"
)

func fieldsOf(errs []dto.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := dto.CreateProductRequest{
		SKU:      "PROD-0001",
		Name:     "Monitor",
		Price:    decimal.NewFromInt(100),
		Stock:    5,
		MinStock: 1,
		Category: entity.CategoryElectronics,
	}
	assert.Empty(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
		field  string
	}{
		{"precio negativo", func(r *dto.CreateProductRequest) { r.Price = decimal.NewFromInt(-5) }, "price"},
		{"stock negativo", func(r *dto.CreateProductRequest) { r.Stock = -1 }, "stock"},
		{"minStock negativo", func(r *dto.CreateProductRequest) { r.MinStock = -1 }, "minStock"},
		{"sku vacío", func(r *dto.CreateProductRequest) { r.SKU = "" }, "sku"},
		{"sku muy corto", func(r *dto.CreateProductRequest) { r.SKU = "P" }, "sku"},
		{"name vacío", func(r *dto.CreateProductRequest) { r.Name = "" }, "name"},
		{"categoría vacía", func(r *dto.CreateProductRequest) { r.Category = "" }, "category"},
		{"categoría fuera del catálogo", func(r *dto.CreateProductRequest) { r.Category = "juguetes" }, "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			errs := in.Validate()
			assert.Contains(t, fieldsOf(errs), tc.field)
		})
	}
}

func TestCreateProductRequest_Validate_AcumulaErrores(t *testing.T) {
	in := dto.CreateProductRequest{Price: decimal.NewFromInt(-5)}
	errs := in.Validate()
	// sku, name, price y category fallan a la vez: el caller recibe la lista completa.
	fields := fieldsOf(errs)
	assert.Contains(t, fields, "sku")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "category")
}

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := dto.CreateUserRequest{
		Email:    "a@x.com",
		Password: "password123",
		Name:     "Usuario",
		Role:     entity.RoleManager,
	}
	assert.Empty(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*dto.CreateUserRequest)
		field  string
	}{
		{"email vacío", func(r *dto.CreateUserRequest) { r.Email = "" }, "email"},
		{"email malformado", func(r *dto.CreateUserRequest) { r.Email = "no-es-email" }, "email"},
		{"password corto", func(r *dto.CreateUserRequest) { r.Password = "corto" }, "password"},
		{"rol desconocido", func(r *dto.CreateUserRequest) { r.Role = "superuser" }, "role"},
		{"name vacío", func(r *dto.CreateUserRequest) { r.Name = "" }, "name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			assert.Contains(t, fieldsOf(in.Validate()), tc.field)
		})
	}

	// Rol vacío es válido: el use case lo resuelve a employee.
	in := valid
	in.Role = ""
	assert.Empty(t, in.Validate())
}

func TestUpdateProductRequest_Validate_NilEsValido(t *testing.T) {
	assert.Empty(t, dto.UpdateProductRequest{}.Validate(), "sin campos no hay nada que validar")

	neg := decimal.NewFromInt(-1)
	errs := dto.UpdateProductRequest{Price: &neg}.Validate()
	assert.Contains(t, fieldsOf(errs), "price")
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.Empty(t, dto.LoginRequest{Email: "a@x.com", Password: "x"}.Validate())
	assert.Contains(t, fieldsOf(dto.LoginRequest{Password: "x"}.Validate()), "email")
	assert.Contains(t, fieldsOf(dto.LoginRequest{Email: "a@x.com"}.Validate()), "password")
}
