package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
)

// parseDateRange lee ?from=YYYY-MM-DD&to=YYYY-MM-DD. Sin rango se lista el día
// presente; un rango a medias (solo from o solo to) es inválido. Con ok=false
// la respuesta de error ya quedó escrita.
func parseDateRange(c *fiber.Ctx) (from, to time.Time, ok bool) {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
		return from, to, false
	}
	if q.From == "" && q.To == "" {
		now := time.Now()
		return now, now, true
	}
	if q.From == "" || q.To == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from y to deben venir juntos"})
		return from, to, false
	}
	var err error
	from, err = time.ParseInLocation(dto.DateFormat, q.From, time.Local)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "from debe ser YYYY-MM-DD"})
		return from, to, false
	}
	to, err = time.ParseInLocation(dto.DateFormat, q.To, time.Local)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "to debe ser YYYY-MM-DD"})
		return from, to, false
	}
	if to.Before(from) {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "to no puede ser anterior a from"})
		return from, to, false
	}
	return from, to, true
}
