package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/cazuela-chapina-api/internal/application/analytics"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/auth"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/inventory"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/ports"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/pos"
	"github.com/jhoicas/cazuela-chapina-api/internal/application/usecase"
	"github.com/jhoicas/cazuela-chapina-api/internal/domain/entity"
	"github.com/jhoicas/cazuela-chapina-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CatalogUC        *usecase.CatalogUseCase
	ComboUC          *usecase.ComboUseCase
	Checkout         *pos.CheckoutUseCase
	Receipt          *pos.ReceiptUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	IngredientUC     *inventory.IngredientUseCase
	Replenishment    *inventory.ReplenishmentUseCase
	DashboardUC      *appanalytics.DashboardUseCase
	AssistantUC      *usecase.AssistantUseCase
	Sessions         ports.SessionStore
	JWTSecret        string
	LoginPerMinute   int
	Location         *time.Location // zona del POS para los filtros de fecha
	Log              *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	var (
		admin     = RequireRole(entity.RoleAdmin)
		pointSale = RequireRole(entity.RoleCashier, entity.RoleAdmin)
		kitchen   = RequireRole(entity.RoleCook, entity.RoleAdmin)
	)

	// Auth: login público con límite por IP
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", LoginRateLimit(deps.LoginPerMinute), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token con sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Post("/auth/register", admin, authHandler.Register)

	// Catálogo: lectura para todos, escritura solo administrador
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog/variants", catalogHandler.List)
	protected.Get("/catalog/variants/:id", catalogHandler.GetByID)
	protected.Post("/catalog/variants", admin, catalogHandler.Create)
	protected.Put("/catalog/variants/:id", admin, catalogHandler.Update)

	comboHandler := NewComboHandler(deps.ComboUC)
	protected.Get("/combos", comboHandler.List)
	protected.Get("/combos/:id", comboHandler.GetByID)
	protected.Post("/combos", admin, comboHandler.Create)
	protected.Post("/combos/:id/toggle", admin, comboHandler.Toggle)

	// POS
	cartHandler := NewCartHandler(deps.Checkout)
	cartGroup := protected.Group("/cart", pointSale)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Post("/combos", cartHandler.AddCombo)
	cartGroup.Put("/items/:id", cartHandler.SetQuantity)
	cartGroup.Delete("/items/:id", cartHandler.RemoveItem)

	orderHandler := NewOrderHandler(deps.Checkout, deps.Receipt)
	orders := protected.Group("/ordenes", pointSale)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Inventario de insumos
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.IngredientUC, deps.Replenishment, deps.Location)
	inv := protected.Group("/inventory", kitchen)
	inv.Get("/items", inventoryHandler.ListItems)
	inv.Post("/items", inventoryHandler.CreateItem)
	inv.Get("/items/:id", inventoryHandler.GetItem)
	inv.Put("/items/:id", inventoryHandler.UpdateItem)
	inv.Post("/items/:id/adjust", inventoryHandler.Adjust)
	inv.Post("/movements", inventoryHandler.RegisterMovement)
	inv.Get("/report", inventoryHandler.Report)
	inv.Get("/waste", inventoryHandler.Waste)
	inv.Get("/replenishment", inventoryHandler.GetReplenishmentList)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Location)
	dash := protected.Group("/dashboard", admin)
	dash.Get("/", dashboardHandler.GetDashboard)
	dash.Get("/ranking", dashboardHandler.Ranking)

	// Asistente (SSE)
	assistantHandler := NewAssistantHandler(deps.AssistantUC, deps.Log)
	protected.Get("/assistant/stream", assistantHandler.Stream)
}
