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

	appanalytics "github.com/flexigestor/flexi-gestor-api/internal/application/analytics"
	"github.com/flexigestor/flexi-gestor-api/internal/application/auth"
	"github.com/flexigestor/flexi-gestor-api/internal/application/finance"
	"github.com/flexigestor/flexi-gestor-api/internal/application/inventory"
	"github.com/flexigestor/flexi-gestor-api/internal/application/usecase"
	infrapdf "github.com/flexigestor/flexi-gestor-api/internal/infrastructure/pdf"
	"github.com/flexigestor/flexi-gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/flexigestor/flexi-gestor-api/internal/interfaces/http"
	"github.com/flexigestor/flexi-gestor-api/pkg/config"
	"github.com/flexigestor/flexi-gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	// Repositórios (fora de transação usam o pool direto)
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	payableRepo := postgres.NewPayableRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(productRepo, txRunner)
	inventoryQueryUC := inventory.NewQueryUseCase(movementRepo, batchRepo, stockRepo)
	payableUC := finance.NewPayableUseCase(payableRepo)
	receivableUC := finance.NewReceivableUseCase(receivableRepo)
	dreUC := finance.NewDREUseCase(financeRepo)
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	drePDFUC := finance.NewDREPDFUseCase(dreUC, companyRepo, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Flexi Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:        companyUC,
		ProductUC:        productUC,
		CustomerUC:       customerUC,
		SupplierUC:       supplierUC,
		RegisterMovement: registerMovementUC,
		InventoryQuery:   inventoryQueryUC,
		PayableUC:        payableUC,
		ReceivableUC:     receivableUC,
		DREUC:            dreUC,
		DREPDFUC:         drePDFUC,
		DashboardUC:      dashboardUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
