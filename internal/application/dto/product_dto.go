package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-backend/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// IsAvailable nil se resuelve a true.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Category    string          `json:"category"`
	IsAvailable *bool           `json:"isAvailable"`
}

// Validate reglas de campo para CreateProductRequest.
func (r CreateProductRequest) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "sku", r.SKU, 2)
	errs = requireString(errs, "name", r.Name, 2)
	if r.Price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Message: "price debe ser mayor o igual a 0"})
	}
	if r.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock debe ser mayor o igual a 0"})
	}
	if r.MinStock < 0 {
		errs = append(errs, FieldError{Field: "minStock", Message: "minStock debe ser mayor o igual a 0"})
	}
	if r.Category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "category es requerida"})
	} else if !entity.ValidCategory(r.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "category no pertenece al catálogo"})
	}
	return errs
}

// UpdateProductRequest entrada parcial para actualizar un producto. Campos nil no se modifican.
type UpdateProductRequest struct {
	SKU         *string          `json:"sku"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	MinStock    *int             `json:"minStock"`
	Category    *string          `json:"category"`
	IsAvailable *bool            `json:"isAvailable"`
}

// Validate reglas de campo para UpdateProductRequest.
func (r UpdateProductRequest) Validate() []FieldError {
	var errs []FieldError
	if r.SKU != nil && len(*r.SKU) < 2 {
		errs = append(errs, FieldError{Field: "sku", Message: "sku es demasiado corto"})
	}
	if r.Name != nil && len(*r.Name) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "name es demasiado corto"})
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Message: "price debe ser mayor o igual a 0"})
	}
	if r.Stock != nil && *r.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock debe ser mayor o igual a 0"})
	}
	if r.MinStock != nil && *r.MinStock < 0 {
		errs = append(errs, FieldError{Field: "minStock", Message: "minStock debe ser mayor o igual a 0"})
	}
	if r.Category != nil && !entity.ValidCategory(*r.Category) {
		errs = append(errs, FieldError{Field: "category", Message: "category no pertenece al catálogo"})
	}
	return errs
}

// ProductResponse salida de un producto. LowStock es derivado (stock <= minStock).
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"isAvailable"`
	LowStock    bool            `json:"lowStock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// SKUResponse sugerencia de SKU secuencial.
type SKUResponse struct {
	SKU string `json:"sku"`
}

// ToProductResponse convierte la entidad a su representación pública.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Category:    p.Category,
		IsAvailable: p.IsAvailable,
		LowStock:    p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
