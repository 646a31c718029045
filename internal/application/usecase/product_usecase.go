package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// ProductUseCase casos de uso del catálogo. Los productos nunca se borran:
// la baja es lógica para no romper las líneas de venta históricas.
type ProductUseCase struct {
	repo      repository.ProductRepository
	auditRepo repository.AuditRepository
	log       *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, auditRepo repository.AuditRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, auditRepo: auditRepo, log: log}
}

// Create crea un producto. Exactamente uno de los dos precios debe venir y ser > 0.
func (uc *ProductUseCase) Create(operatorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrMissingField
	}
	ptype := entity.ProductType(in.Type)
	if !ptype.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	perKg, perUnit, err := parsePrices(in.PricePerKg, in.PricePerUnit)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Type:         ptype,
		PricePerKg:   perKg,
		PricePerUnit: perUnit,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.audit(operatorID, entity.AccionCrearProducto, product.ID)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edita nombre, tipo o precio. Si viene algún precio se revalida el
// invariante de precio único; cambiar el precio no altera ventas pasadas
// porque las líneas guardan su subtotal.
func (uc *ProductUseCase) Update(operatorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrMissingField
		}
		product.Name = name
	}
	if in.Type != nil {
		ptype := entity.ProductType(*in.Type)
		if !ptype.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		product.Type = ptype
	}
	if in.PricePerKg != nil || in.PricePerUnit != nil {
		var kgStr, unitStr string
		if in.PricePerKg != nil {
			kgStr = *in.PricePerKg
		}
		if in.PricePerUnit != nil {
			unitStr = *in.PricePerUnit
		}
		perKg, perUnit, err := parsePrices(kgStr, unitStr)
		if err != nil {
			return nil, err
		}
		product.PricePerKg = perKg
		product.PricePerUnit = perUnit
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.audit(operatorID, entity.AccionEditarProducto, product.ID)
	return toProductResponse(product), nil
}

// Deactivate da de baja lógica un producto.
func (uc *ProductUseCase) Deactivate(operatorID, id string) error {
	if err := uc.repo.Deactivate(id); err != nil {
		return err
	}
	uc.audit(operatorID, entity.AccionDesactivarProducto, id)
	return nil
}

// ListActive lista los productos activos del catálogo.
func (uc *ProductUseCase) ListActive() ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca productos activos por nombre, sin distinguir tildes ni mayúsculas
// ("platano" encuentra "Plátano").
func (uc *ProductUseCase) Search(query string) ([]dto.ProductResponse, error) {
	q := domain.NormalizeName(query)
	if q == "" {
		return uc.ListActive()
	}
	list, err := uc.repo.SearchActive(q)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// audit registra la mutación del catálogo; un fallo se loguea y se descarta.
func (uc *ProductUseCase) audit(operatorID, action, productID string) {
	if err := uc.auditRepo.Record(operatorID, action, "PRODUCTO", productID); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("auditoría no registrada")
	}
}

// parsePrices valida que venga exactamente un precio y que sea positivo.
func parsePrices(perKgStr, perUnitStr string) (perKg, perUnit decimal.NullDecimal, err error) {
	hasKg := strings.TrimSpace(perKgStr) != ""
	hasUnit := strings.TrimSpace(perUnitStr) != ""
	if hasKg == hasUnit { // ambos o ninguno
		return perKg, perUnit, domain.ErrInvalidInput
	}
	if hasKg {
		d, err := domain.ParseAmount(perKgStr)
		if err != nil {
			return perKg, perUnit, err
		}
		perKg = decimal.NewNullDecimal(d)
		return perKg, perUnit, nil
	}
	d, err := domain.ParseAmount(perUnitStr)
	if err != nil {
		return perKg, perUnit, err
	}
	perUnit = decimal.NewNullDecimal(d)
	return perKg, perUnit, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        string(p.Type),
		ActivePrice: p.ActivePrice(),
		Unit:        string(p.Unit()),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format(dto.TimeFormat),
	}
	if p.PricePerKg.Valid {
		d := p.PricePerKg.Decimal
		out.PricePerKg = &d
	}
	if p.PricePerUnit.Valid {
		d := p.PricePerUnit.Decimal
		out.PricePerUnit = &d
	}
	return out
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}
