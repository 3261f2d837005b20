package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-backend/internal/application/auth"
	"github.com/tu-usuario/erp-backend/internal/application/usecase"
	"github.com/tu-usuario/erp-backend/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	InventoryUC *usecase.InventoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. La tabla ruta → roles permitidos se
// declara aquí, explícita, y la consume RequireRole; ninguna ruta deduce
// permisos por reflexión ni metadatos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.JWTSecret)

	// Auth: login público; register solo admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authn, RequireRole(entity.RoleAdmin), authHandler.Register)

	// Users: todo el grupo es solo admin
	users := api.Group("/users", authn, RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Inventory: lectura para los tres roles, escritura admin/manager, borrado solo admin.
	// Las rutas fijas (low-stock, categories, generate-sku) van antes de /:id.
	inv := api.Group("/inventory", authn)
	invHandler := NewInventoryHandler(deps.InventoryUC)
	readRoles := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee)
	writeRoles := RequireRole(entity.RoleAdmin, entity.RoleManager)

	inv.Get("/low-stock", writeRoles, invHandler.ListLowStock)
	inv.Get("/categories", readRoles, invHandler.Categories)
	inv.Get("/generate-sku", writeRoles, invHandler.GenerateSKU)
	inv.Get("/", readRoles, invHandler.List)
	inv.Post("/", writeRoles, invHandler.Create)
	inv.Get("/:id", readRoles, invHandler.GetByID)
	inv.Put("/:id", writeRoles, invHandler.Update)
	inv.Delete("/:id", RequireRole(entity.RoleAdmin), invHandler.Delete)
}
