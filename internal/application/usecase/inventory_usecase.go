package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-backend/internal/application/dto"
	"github.com/tu-usuario/erp-backend/internal/domain"
	"github.com/tu-usuario/erp-backend/internal/domain/entity"
	"github.com/tu-usuario/erp-backend/internal/domain/repository"
)

// InventoryUseCase casos de uso CRUD del inventario, más consultas derivadas
// (low-stock, catálogo de categorías, sugerencia de SKU).
type InventoryUseCase struct {
	repo repository.ProductRepository
}

// NewInventoryUseCase construye el caso de uso con el puerto de persistencia.
func NewInventoryUseCase(repo repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create crea un producto. Devuelve ErrDuplicate si el SKU ya existe.
func (uc *InventoryUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Category:    in.Category,
		IsAvailable: isAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// List lista productos con filtros opcionales de búsqueda y categoría.
func (uc *InventoryUseCase) List(search, category string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(repository.ProductFilter{Search: search, Category: category})
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListLowStock devuelve los productos en o por debajo del umbral mínimo,
// ordenados por stock ascendente.
func (uc *InventoryUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Categories devuelve el conjunto cerrado de categorías.
func (uc *InventoryUseCase) Categories() []string {
	return entity.Categories
}

// GenerateSKU sugiere el siguiente código secuencial a partir del conteo actual.
// No es atómico: dos llamadas concurrentes pueden recibir la misma sugerencia y
// el constraint único del insert rompe el empate (el cliente reintenta ante 409).
func (uc *InventoryUseCase) GenerateSKU() (*dto.SKUResponse, error) {
	count, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.SKUResponse{SKU: fmt.Sprintf("PROD-%04d", count+1)}, nil
}

// GetByID obtiene un producto por ID. Devuelve ErrNotFound si no existe.
func (uc *InventoryUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToProductResponse(product), nil
}

// Update actualiza parcialmente un producto. La unicidad del SKU no se
// re-valida aquí: el constraint de la tabla la garantiza y una colisión
// llega como ErrDuplicate.
func (uc *InventoryUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// Delete elimina un producto. Devuelve ErrNotFound si no existe.
func (uc *InventoryUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *dto.ToProductResponse(p))
	}
	return out
}
