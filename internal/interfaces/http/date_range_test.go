package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRangeApp monta parseDateRange detrás de un handler mínimo que expone
// el rango resuelto.
func buildRangeApp() *fiber.App {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		from, to, ok := parseDateRange(c)
		if !ok {
			return nil
		}
		return c.JSON(fiber.Map{
			"from": from.Format("2006-01-02"),
			"to":   to.Format("2006-01-02"),
		})
	})
	return app
}

func TestParseDateRange_SinParametrosEsHoy(t *testing.T) {
	app := buildRangeApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/list", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestParseDateRange_RangoCompleto(t *testing.T) {
	app := buildRangeApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/list?from=2026-08-01&to=2026-08-15", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Un rango a medias no colapsa en silencio al día presente: se rechaza para
// no descartar el extremo que el caller sí mandó.
func TestParseDateRange_SoloUnExtremoEsInvalido(t *testing.T) {
	app := buildRangeApp()

	for _, query := range []string{"?from=2026-08-01", "?to=2026-08-15"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/list"+query, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, query)
	}
}

func TestParseDateRange_FechaMalFormadaEsInvalida(t *testing.T) {
	app := buildRangeApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/list?from=01/08/2026&to=2026-08-15", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestParseDateRange_InvertidoEsInvalido(t *testing.T) {
	app := buildRangeApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/list?from=2026-08-15&to=2026-08-01", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
