package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sellcontrol/backoffice-api/internal/application/cashbox"
	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
)

// CashboxHandler maneja las peticiones HTTP de movimientos de caja (protegido).
type CashboxHandler struct {
	uc *cashbox.CashboxUseCase
}

// NewCashboxHandler construye el handler.
func NewCashboxHandler(uc *cashbox.CashboxUseCase) *CashboxHandler {
	return &CashboxHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de caja
// @Tags         cashbox
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashMovementRequest  true  "Tipo, monto y motivo"
// @Success      201   {object}  dto.CashMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cashbox/movements [post]
func (h *CashboxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActiveSession):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput),
			errors.Is(err, domain.ErrMissingField),
			errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrNonPositiveAmount):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de caja por rango de fechas (sin rango: hoy)
// @Tags         cashbox
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {array}  dto.CashMovementResponse
// @Router       /api/cashbox/movements [get]
func (h *CashboxHandler) List(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListByDateRange(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
