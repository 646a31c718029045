package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/application/expenses"
	"github.com/sellcontrol/backoffice-api/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP de gastos y mermas (protegido).
type ExpenseHandler struct {
	uc *expenses.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *expenses.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// CreateExpense godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Categoría, monto y descripción"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterExpense(c.Context(), GetUserID(c), in)
	if err != nil {
		return expenseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses godoc
// @Summary      Listar gastos por rango de fechas (sin rango: hoy)
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListExpensesByDateRange(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateLoss godoc
// @Summary      Registrar merma
// @Tags         losses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLossRequest  true  "Descripción y monto aproximado"
// @Success      201   {object}  dto.LossResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/losses [post]
func (h *ExpenseHandler) CreateLoss(c *fiber.Ctx) error {
	var in dto.CreateLossRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterLoss(c.Context(), GetUserID(c), in)
	if err != nil {
		return expenseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListLosses godoc
// @Summary      Listar mermas por rango de fechas (sin rango: hoy)
// @Tags         losses
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {array}  dto.LossResponse
// @Router       /api/losses [get]
func (h *ExpenseHandler) ListLosses(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListLossesByDateRange(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// expenseError mapea los errores de validación de gastos y mermas al código HTTP.
func expenseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNonPositiveAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
