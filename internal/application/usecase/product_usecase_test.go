package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/application/usecase"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	searched string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SearchActive(normalized string) ([]*entity.Product, error) {
	r.searched = normalized
	return r.ListActive()
}

type fakeAuditRepo struct {
	records []string
}

func (r *fakeAuditRepo) Record(operatorID, action, entity, entityID string) error {
	r.records = append(r.records, action)
	return nil
}

const testOperator = "op-1"

func buildProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo, *fakeAuditRepo) {
	repo := newFakeProductRepo()
	audit := &fakeAuditRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return usecase.NewProductUseCase(repo, audit, log), repo, audit
}

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: exactamente un precio
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_PorKg(t *testing.T) {
	uc, _, audit := buildProductUseCase()

	out, err := uc.Create(testOperator, dto.CreateProductRequest{
		Name:       "Plátano",
		Type:       "FRUTA",
		PricePerKg: "1200",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "KG", out.Unit)
	assert.True(t, out.Active)
	require.NotNil(t, out.PricePerKg)
	assert.Nil(t, out.PricePerUnit)
	assert.Contains(t, audit.records, entity.AccionCrearProducto)
}

func TestProductCreate_PorUnidadConComa(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	out, err := uc.Create(testOperator, dto.CreateProductRequest{
		Name:         "Piña",
		Type:         "FRUTA",
		PricePerUnit: "1500,50",
	})
	require.NoError(t, err)
	assert.Equal(t, "UNIDAD", out.Unit)
	assert.True(t, out.ActivePrice.Equal(decimalFrom(t, "1500.50")))
}

func TestProductCreate_AmbosPreciosRechazado(t *testing.T) {
	uc, _, audit := buildProductUseCase()

	_, err := uc.Create(testOperator, dto.CreateProductRequest{
		Name:         "Plátano",
		Type:         "FRUTA",
		PricePerKg:   "1200",
		PricePerUnit: "500",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un producto se vende por kg o por unidad, nunca ambos")
	assert.Empty(t, audit.records, "una creación rechazada no se audita")
}

func TestProductCreate_SinPrecioRechazado(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	_, err := uc.Create(testOperator, dto.CreateProductRequest{Name: "Plátano", Type: "FRUTA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioCeroRechazado(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	_, err := uc.Create(testOperator, dto.CreateProductRequest{
		Name:       "Plátano",
		Type:       "FRUTA",
		PricePerKg: "0",
	})
	assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
}

func TestProductCreate_NombreVacioRechazado(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	_, err := uc.Create(testOperator, dto.CreateProductRequest{Name: "  ", Type: "FRUTA", PricePerKg: "1200"})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestProductCreate_TipoDesconocidoRechazado(t *testing.T) {
	uc, _, _ := buildProductUseCase()

	_, err := uc.Create(testOperator, dto.CreateProductRequest{Name: "Pan", Type: "PANADERIA", PricePerKg: "1200"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y baja lógica
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CambiaPrecioYUnidad(t *testing.T) {
	uc, _, audit := buildProductUseCase()
	created, err := uc.Create(testOperator, dto.CreateProductRequest{Name: "Piña", Type: "FRUTA", PricePerUnit: "1500"})
	require.NoError(t, err)

	// Pasa de venderse por unidad a venderse por kg.
	newPrice := "900"
	out, err := uc.Update(testOperator, created.ID, dto.UpdateProductRequest{PricePerKg: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "KG", out.Unit)
	assert.Nil(t, out.PricePerUnit, "el precio anterior se descarta al cambiar la unidad")
	assert.Contains(t, audit.records, entity.AccionEditarProducto)
}

func TestProductUpdate_InexistenteRetornaNil(t *testing.T) {
	uc, _, audit := buildProductUseCase()

	out, err := uc.Update(testOperator, "no-existe", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, audit.records)
}

func TestProductDeactivate_AuditaLaBaja(t *testing.T) {
	uc, repo, audit := buildProductUseCase()
	created, err := uc.Create(testOperator, dto.CreateProductRequest{Name: "Piña", Type: "FRUTA", PricePerUnit: "1500"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(testOperator, created.ID))
	assert.False(t, repo.products[created.ID].Active)
	assert.Contains(t, audit.records, entity.AccionDesactivarProducto)
}

func TestProductDeactivate_InexistenteNoAudita(t *testing.T) {
	uc, _, audit := buildProductUseCase()

	err := uc.Deactivate(testOperator, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotContains(t, audit.records, entity.AccionDesactivarProducto)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search: el término se normaliza antes de tocar el repo
// ──────────────────────────────────────────────────────────────────────────────

func TestProductSearch_NormalizaElTermino(t *testing.T) {
	uc, repo, _ := buildProductUseCase()

	_, err := uc.Search("  PLÁTANO ")
	require.NoError(t, err)
	assert.Equal(t, "platano", repo.searched)
}

func TestProductSearch_VacioListaTodoElCatalogo(t *testing.T) {
	uc, repo, _ := buildProductUseCase()
	_, err := uc.Create(testOperator, dto.CreateProductRequest{Name: "Plátano", Type: "FRUTA", PricePerKg: "1200"})
	require.NoError(t, err)

	out, err := uc.Search("")
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Empty(t, repo.searched, "sin término no se llama a la búsqueda")
}
