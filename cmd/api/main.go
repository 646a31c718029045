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

	"github.com/sellcontrol/backoffice-api/internal/application/auth"
	"github.com/sellcontrol/backoffice-api/internal/application/cashbox"
	"github.com/sellcontrol/backoffice-api/internal/application/expenses"
	"github.com/sellcontrol/backoffice-api/internal/application/reports"
	"github.com/sellcontrol/backoffice-api/internal/application/sales"
	"github.com/sellcontrol/backoffice-api/internal/application/usecase"
	infrapdf "github.com/sellcontrol/backoffice-api/internal/infrastructure/pdf"
	"github.com/sellcontrol/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/sellcontrol/backoffice-api/internal/interfaces/http"
	"github.com/sellcontrol/backoffice-api/pkg/config"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewCashMovementRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	lossRepo := postgres.NewLossRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, auditRepo, log)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, auditRepo, log)
	cashboxUC := cashbox.NewCashboxUseCase(movementRepo, auditRepo, log)
	expenseUC := expenses.NewExpenseUseCase(expenseRepo, lossRepo, auditRepo, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator(cfg.App.Name)
	reportUC := reports.NewReportUseCase(saleRepo, expenseRepo, lossRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		SaleUC:    saleUC,
		CashboxUC: cashboxUC,
		ExpenseUC: expenseUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
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
