package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sellcontrol/backoffice-api/internal/application/auth"
	"github.com/sellcontrol/backoffice-api/internal/application/cashbox"
	"github.com/sellcontrol/backoffice-api/internal/application/expenses"
	"github.com/sellcontrol/backoffice-api/internal/application/reports"
	"github.com/sellcontrol/backoffice-api/internal/application/sales"
	"github.com/sellcontrol/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	SaleUC    *sales.SaleUseCase
	CashboxUC *cashbox.CashboxUseCase
	ExpenseUC *expenses.ExpenseUseCase
	ReportUC  *reports.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Libro de ventas
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SaleUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/pending", salesHandler.ListPending)
	salesGroup.Get("/:id", salesHandler.GetByID)
	salesGroup.Post("/:id/settle", salesHandler.Settle)

	// Caja
	cashbox := protected.Group("/cashbox")
	cashboxHandler := NewCashboxHandler(deps.CashboxUC)
	cashbox.Post("/movements", cashboxHandler.Create)
	cashbox.Get("/movements", cashboxHandler.List)

	// Gastos y mermas
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	protected.Post("/expenses", expenseHandler.CreateExpense)
	protected.Get("/expenses", expenseHandler.ListExpenses)
	protected.Post("/losses", expenseHandler.CreateLoss)
	protected.Get("/losses", expenseHandler.ListLosses)

	// Reportes
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/today", reportHandler.Today)
	reportsGroup.Get("/range", reportHandler.Range)
	reportsGroup.Get("/range/pdf", reportHandler.RangePDF)

	// Operadores (solo ADMIN)
	users := protected.Group("/users", RequireAdmin())
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
	users.Delete("/:id", authHandler.DeactivateUser)
}
