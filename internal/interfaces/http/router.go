package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/alerts"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/auth"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/catalog"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/usecase"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateProduct *catalog.CreateProductUseCase
	ProductUC     *usecase.ProductUseCase
	AlertsUC      *alerts.UseCase
	AlertsReport  *alerts.ReportUseCase
	CompanyUC     *usecase.CompanyUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	SupplierUC    *usecase.SupplierUseCase
	SaleUC        *usecase.SaleUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies y alertas por empresa (público por ahora; se puede proteger
	// con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	alertHandler := NewAlertHandler(deps.AlertsUC, deps.AlertsReport)
	companies.Get("/:company_id/alerts/low-stock", alertHandler.LowStock)
	companies.Get("/:company_id/alerts/low-stock/report", alertHandler.LowStockReport)

	// Products (público)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CreateProduct, deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequireRole(entity.RoleAdmin), supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/:id/products/:productID", supplierHandler.LinkProduct)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Register)
	sales.Get("/", saleHandler.List)
}
