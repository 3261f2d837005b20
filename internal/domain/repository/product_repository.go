package repository

import "github.com/tu-usuario/erp-backend/internal/domain/entity"

// ProductFilter filtros opcionales para listados de productos.
// Search es substring (case-insensitive) sobre el nombre; Category es igualdad exacta.
type ProductFilter struct {
	Search   string
	Category string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	// ListLowStock devuelve los productos con stock <= min_stock, ordenados por stock ascendente.
	ListLowStock() ([]*entity.Product, error)
	// Count devuelve el total de filas; lo usa la sugerencia de SKU secuencial.
	Count() (int, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
