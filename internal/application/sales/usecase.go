package sales

import (
	"context"
	"strings"
	"time"

	"github.com/sellcontrol/backoffice-api/internal/application/dto"
	"github.com/sellcontrol/backoffice-api/internal/domain"
	"github.com/sellcontrol/backoffice-api/internal/domain/entity"
	"github.com/sellcontrol/backoffice-api/internal/domain/repository"
	"github.com/sellcontrol/backoffice-api/pkg/logger"
)

// SaleUseCase registra ventas con sus líneas y maneja el ciclo de fiados.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	auditRepo   repository.AuditRepository
	log         *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	auditRepo repository.AuditRepository,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		auditRepo:   auditRepo,
		log:         log,
	}
}

// Commit confirma el carrito como una venta durable.
// El total se recalcula aquí desde los subtotales (nunca se confía en un total
// del caller) y cabecera + líneas se insertan en una sola transacción: si una
// línea falla, el rollback deja cero filas visibles.
func (uc *SaleUseCase) Commit(ctx context.Context, operatorID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if operatorID == "" {
		return nil, domain.ErrNoActiveSession
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	method := entity.PaymentMethod(in.Method)
	if !method.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	cart := NewCart()
	for _, it := range in.Items {
		qty, err := domain.ParseQuantity(it.Quantity)
		if err != nil {
			return nil, err
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active {
			return nil, domain.ErrNotFound
		}
		if err := cart.AddItem(product, qty); err != nil {
			return nil, err
		}
	}

	state := entity.EstadoCobrada
	customer := ""
	if in.Credit {
		state = entity.EstadoPendiente
		customer = strings.TrimSpace(in.CustomerName)
	}

	sale := &entity.Sale{
		Timestamp:    time.Now(),
		OperatorID:   operatorID,
		Total:        cart.Total(),
		Method:       method,
		State:        state,
		CustomerName: customer,
	}

	err := uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i, item := range cart.Items() {
			item.SaleID = sale.ID
			item.Line = i + 1
			if err := saleRepo.CreateItem(&item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit(operatorID, entity.AccionRegistrarVenta, "VENTA", sale.ID)
	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("state", string(state)).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta registrada")

	return toSaleResponse(sale), nil
}

// Settle cobra una venta fiada: PENDIENTE -> COBRADA, una sola vez.
// La condición de estado vive en el UPDATE, así dos cobros simultáneos no
// pueden "tener éxito" los dos.
func (uc *SaleUseCase) Settle(ctx context.Context, operatorID, saleID string) error {
	if operatorID == "" {
		return domain.ErrNoActiveSession
	}
	ok, err := uc.saleRepo.Settle(saleID)
	if err != nil {
		return err
	}
	if !ok {
		sale, err := uc.saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		return domain.ErrNotPending
	}

	uc.audit(operatorID, entity.AccionCobrarVenta, "VENTA", saleID)
	uc.log.Info().Str("sale_id", saleID).Msg("venta fiada cobrada")
	return nil
}

// ListToday devuelve las ventas del día, más reciente primero.
func (uc *SaleUseCase) ListToday(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListToday()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListPending devuelve las ventas fiadas sin cobrar, más reciente primero.
func (uc *SaleUseCase) ListPending(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListPending()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// ListByDateRange devuelve las ventas del rango de fechas calendario inclusivo.
func (uc *SaleUseCase) ListByDateRange(ctx context.Context, from, to time.Time) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(sales), nil
}

// Detail devuelve una venta con sus líneas.
func (uc *SaleUseCase) Detail(ctx context.Context, saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ItemsBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleDetailResponse{SaleResponse: *toSaleResponse(sale)}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        string(it.Unit),
			Subtotal:    it.Subtotal,
		})
	}
	return out, nil
}

// audit registra la acción; un fallo se loguea y se descarta (fire-and-forget).
func (uc *SaleUseCase) audit(operatorID, action, entityKind, entityID string) {
	if err := uc.auditRepo.Record(operatorID, action, entityKind, entityID); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("auditoría no registrada")
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		Timestamp:    s.Timestamp.Format(dto.TimeFormat),
		OperatorID:   s.OperatorID,
		OperatorName: s.OperatorName,
		Total:        s.Total,
		Method:       string(s.Method),
		State:        string(s.State),
		CustomerName: s.CustomerName,
	}
}

func toSaleResponses(sales []*entity.Sale) []dto.SaleResponse {
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out
}
