package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/invorya/inventario/internal/application/analytics"
	"github.com/invorya/inventario/internal/application/auth"
	"github.com/invorya/inventario/internal/application/inventory"
	"github.com/invorya/inventario/internal/application/usecase"
	"github.com/invorya/inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	LedgerUC    *inventory.LedgerUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. El RBAC se aplica dos veces a propósito:
// RequireRole corta en el borde HTTP y la policy de dominio vuelve a verificar
// dentro del caso de uso, para que la regla no dependa del transporte.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido, ambos roles)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Products (protegido; crear es solo ADMIN)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	movementHandler := NewMovementHandler(deps.LedgerUC)
	products.Get("/", productHandler.List)
	products.Post("/", RequireRole(entity.RoleAdmin), productHandler.Create)
	products.Get("/:id/stock", movementHandler.Stock)

	// Movements (protegido, ambos roles)
	movements := protected.Group("/movements")
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)

	// Users (protegido, solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
