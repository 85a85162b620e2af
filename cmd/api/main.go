package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/alerts"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/auth"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/catalog"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/application/usecase"
	infrapdf "github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/infrastructure/pdf"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/infrastructure/postgres"
	httpRouter "github.com/vai-sys/Backend-Engineering-intern-Case-study/internal/interfaces/http"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/pkg/config"
	"github.com/vai-sys/Backend-Engineering-intern-Case-study/pkg/logger"

	_ "github.com/vai-sys/Backend-Engineering-intern-Case-study/docs"
)

// @title        StockFlow API
// @version      1.0
// @description  Inventario multi-bodega: catálogo de productos y alertas de stock bajo.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	createProductUC := catalog.NewCreateProductUseCase(txRunner, productRepo, warehouseRepo)
	alertsUC := alerts.NewUseCase(txRunner, alerts.Config{
		LookbackDays:     cfg.Alerts.LookbackDays,
		DefaultThreshold: cfg.Alerts.DefaultThreshold,
		QueryTimeout:     cfg.Alerts.QueryTimeout(),
	})
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	alertsReportUC := alerts.NewReportUseCase(alertsUC, companyRepo, reportGenerator)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateProduct: createProductUC,
		ProductUC:     productUC,
		AlertsUC:      alertsUC,
		AlertsReport:  alertsReportUC,
		CompanyUC:     companyUC,
		WarehouseUC:   warehouseUC,
		SupplierUC:    supplierUC,
		SaleUC:        saleUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
