package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellcontrol/backoffice-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseAmount: la única regla de montos del sistema. Todo lo que entra por
// teclado (ventas, caja, gastos, mermas) pasa por aquí.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAmount_PuntoDecimal(t *testing.T) {
	d, err := domain.ParseAmount("1500.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1500.50")))
}

// La coma decimal es válida: el teclado numérico local la produce.
func TestParseAmount_ComaDecimal(t *testing.T) {
	d, err := domain.ParseAmount("1500,50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1500.50")),
		"la coma debe interpretarse como separador decimal")
}

func TestParseAmount_EnteroSinDecimales(t *testing.T) {
	d, err := domain.ParseAmount("2000")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(2000)))
}

func TestParseAmount_EspaciosAlrededor(t *testing.T) {
	d, err := domain.ParseAmount("  350,25  ")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("350.25")))
}

func TestParseAmount_VacioRetornaCampoObligatorio(t *testing.T) {
	_, err := domain.ParseAmount("")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = domain.ParseAmount("   ")
	assert.ErrorIs(t, err, domain.ErrMissingField, "solo espacios también es vacío")
}

func TestParseAmount_NoNumericoRetornaMontoInvalido(t *testing.T) {
	for _, s := range []string{"abc", "12a", "1.2.3", "1,2,3"} {
		_, err := domain.ParseAmount(s)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "entrada: %q", s)
	}
}

func TestParseAmount_CeroYNegativoRechazados(t *testing.T) {
	_, err := domain.ParseAmount("0")
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	_, err = domain.ParseAmount("-100")
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)

	_, err = domain.ParseAmount("0,00")
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseQuantity: mismas reglas que los montos pero con su propio error
// para cantidades no positivas.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseQuantity_FraccionDeKilo(t *testing.T) {
	d, err := domain.ParseQuantity("0,5")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("0.5")),
		"medio kilo debe ser una cantidad válida")
}

func TestParseQuantity_CeroRetornaCantidadInvalida(t *testing.T) {
	_, err := domain.ParseQuantity("0")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestParseQuantity_VacioRetornaCampoObligatorio(t *testing.T) {
	_, err := domain.ParseQuantity("")
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeName: forma canónica para búsqueda en el catálogo.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeName_QuitaTildesYBajaMayusculas(t *testing.T) {
	assert.Equal(t, "platano", domain.NormalizeName("Plátano"))
	assert.Equal(t, "limon dulce", domain.NormalizeName("  Limón Dulce "))
	assert.Equal(t, "nispero", domain.NormalizeName("NÍSPERO"))
}

func TestNormalizeName_EnieTambienSeNormaliza(t *testing.T) {
	// La ñ pierde la virgulilla porque es una marca combinante en NFD.
	// La búsqueda prefiere recall sobre precisión.
	assert.Equal(t, "anon", domain.NormalizeName("Añón"))
}
