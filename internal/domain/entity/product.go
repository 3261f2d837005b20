package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas para Product. Conjunto cerrado; el frontend las consulta
// vía GET /api/inventory/categories y nunca las hardcodea.
const (
	CategoryElectronics = "electronics"
	CategoryFurniture   = "furniture"
	CategoryClothing    = "clothing"
	CategoryFood        = "food"
	CategoryOffice      = "office"
	CategoryOther       = "other"
)

// Categories lista el conjunto cerrado de categorías.
var Categories = []string{
	CategoryElectronics,
	CategoryFurniture,
	CategoryClothing,
	CategoryFood,
	CategoryOffice,
	CategoryOther,
}

// ValidCategory indica si category pertenece al conjunto cerrado.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product representa un artículo del inventario.
type Product struct {
	ID          string
	SKU         string // código único legible (ej. PROD-0001)
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	Stock       int
	MinStock    int // umbral para alertas de stock mínimo
	Category    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en o por debajo del umbral mínimo.
// Es un predicado derivado, no un campo persistido.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
