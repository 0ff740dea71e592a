package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flexigestor/flexi-gestor-api/internal/application/analytics"
	"github.com/flexigestor/flexi-gestor-api/internal/application/auth"
	"github.com/flexigestor/flexi-gestor-api/internal/application/finance"
	"github.com/flexigestor/flexi-gestor-api/internal/application/inventory"
	"github.com/flexigestor/flexi-gestor-api/internal/application/usecase"
	"github.com/flexigestor/flexi-gestor-api/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CompanyUC        *usecase.CompanyUseCase
	ProductUC        *usecase.ProductUseCase
	CustomerUC       *usecase.CustomerUseCase
	SupplierUC       *usecase.SupplierUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	InventoryQuery   *inventory.QueryUseCase
	PayableUC        *finance.PayableUseCase
	ReceivableUC     *finance.ReceivableUseCase
	DREUC            *finance.DREUseCase
	DREPDFUC         *finance.DREPDFUseCase
	DashboardUC      *analytics.DashboardUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público: o cadastro de empresa precede o primeiro login)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// A empresa edita os próprios dados cadastrais (admin)
	protected.Put("/companies/:id", RequireRole(), companyHandler.Update)

	// Products (escrita restrita a admin/estoquista)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole(entity.RoleEstoquista), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleEstoquista), productHandler.Update)
	products.Delete("/:id", RequireRole(), productHandler.Delete)

	// Movements e batches (entrada: estoquista; saída: vendedor também)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.InventoryQuery)
	movements := protected.Group("/movements")
	movements.Post("/", RequireRole(entity.RoleEstoquista, entity.RoleVendedor), inventoryHandler.RegisterMovement)
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Get("/:id", inventoryHandler.GetMovement)
	protected.Get("/batches", inventoryHandler.ListBatches)
	protected.Get("/stock/:productId", inventoryHandler.GetStock)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(), customerHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(), supplierHandler.Delete)

	// Contas a pagar (baixa: /baixa)
	payables := protected.Group("/payables")
	payableHandler := NewPayableHandler(deps.PayableUC)
	payables.Post("/", payableHandler.Create)
	payables.Get("/", payableHandler.List)
	payables.Get("/:id", payableHandler.GetByID)
	payables.Put("/:id", payableHandler.Update)
	payables.Post("/:id/baixa", payableHandler.Settle)
	payables.Delete("/:id", RequireRole(), payableHandler.Delete)

	// Contas a receber
	receivables := protected.Group("/receivables")
	receivableHandler := NewReceivableHandler(deps.ReceivableUC)
	receivables.Post("/", receivableHandler.Create)
	receivables.Get("/", receivableHandler.List)
	receivables.Get("/:id", receivableHandler.GetByID)
	receivables.Put("/:id", receivableHandler.Update)
	receivables.Post("/:id/baixa", receivableHandler.Settle)
	receivables.Delete("/:id", RequireRole(), receivableHandler.Delete)

	// Relatórios
	reports := protected.Group("/reports")
	dreHandler := NewDREHandler(deps.DREUC, deps.DREPDFUC)
	reports.Get("/dre", dreHandler.GetStatement)
	reports.Get("/dre/pdf", dreHandler.GetStatementPDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
