package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Stock-ledger-api/internal/domain/production"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Orders      repository.ProductionOrderRepository
	BOMs        repository.BOMRepository
	SalesOrders repository.SalesOrderRepository
	Warehouses  repository.WarehouseRepository
	UOMs        repository.UOMRepository
	Bins        repository.BinRepository
	Vouchers    repository.VoucherRepository
}

// TxRunner ejecuta fn dentro de una transacción con los repositorios de producción.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(r Repos) error) error
}

// OrderUseCase ciclo de vida de la orden de producción y su efecto en la cantidad planificada del bin.
type OrderUseCase struct {
	tx    TxRunner
	items repository.ItemRepository
	log   *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx TxRunner, items repository.ItemRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{tx: tx, items: items, log: log}
}

// CreateInput datos de una nueva orden de producción.
type CreateInput struct {
	Company              string
	ProductionItem       string
	BOMNo                string
	UseMultiLevelBOM     bool
	Qty                  decimal.Decimal
	SalesOrder           string
	ExpectedDeliveryDate *time.Time
	FGWarehouse          string
	WIPWarehouse         string
}

// ItemDetails datos del artículo para precargar una orden.
type ItemDetails struct {
	StockUOM    string
	Description string
	BOMNo       string
}

// Create valida y guarda la orden en borrador.
func (uc *OrderUseCase) Create(ctx context.Context, in CreateInput) (*entity.ProductionOrder, error) {
	if in.Company == "" || in.ProductionItem == "" || in.FGWarehouse == "" || !in.Qty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByCode(ctx, in.ProductionItem)
	if err != nil {
		return nil, fmt.Errorf("production: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	o := &entity.ProductionOrder{
		ID:                   uuid.New().String(),
		Company:              in.Company,
		ProductionItem:       item.Code,
		BOMNo:                in.BOMNo,
		UseMultiLevelBOM:     in.UseMultiLevelBOM,
		Qty:                  in.Qty,
		ProducedQty:          decimal.Zero,
		StockUOM:             item.StockUOM,
		SalesOrder:           in.SalesOrder,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		FGWarehouse:          in.FGWarehouse,
		WIPWarehouse:         in.WIPWarehouse,
		DocStatus:            entity.DocStatusDraft,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	err = uc.tx.RunProduction(ctx, func(r Repos) error {
		if err := validate(ctx, r, o); err != nil {
			return err
		}
		return r.Orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Submit envía la orden: exige bodega WIP y suma qty a la cantidad planificada del bin de producto terminado.
func (uc *OrderUseCase) Submit(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	var o *entity.ProductionOrder
	err := uc.tx.RunProduction(ctx, func(r Repos) error {
		var err error
		if o, err = load(ctx, r, id); err != nil {
			return err
		}
		if o.DocStatus != entity.DocStatusDraft {
			return domain.ErrConflict
		}
		if err := validate(ctx, r, o); err != nil {
			return err
		}
		if o.WIPWarehouse == "" {
			return domainprod.ErrWIPWarehouseRequired
		}
		o.DocStatus = entity.DocStatusSubmitted
		o.Status = entity.ProductionStatusSubmitted
		if err := updatePlanned(ctx, r.Bins, o, o.Qty); err != nil {
			return err
		}
		o.UpdatedAt = time.Now()
		return r.Orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("production_order", o.ID).Str("item_code", o.ProductionItem).Str("qty", o.Qty.String()).
		Msg("orden de producción enviada")
	return o, nil
}

// Cancel cancela la orden si no hay stock entries enviados contra ella y descuenta la cantidad planificada.
func (uc *OrderUseCase) Cancel(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	var o *entity.ProductionOrder
	err := uc.tx.RunProduction(ctx, func(r Repos) error {
		var err error
		if o, err = load(ctx, r, id); err != nil {
			return err
		}
		if o.DocStatus != entity.DocStatusSubmitted {
			return domain.ErrConflict
		}
		se, err := r.Vouchers.FirstSubmittedStockEntry(ctx, o.ID)
		if err != nil {
			return fmt.Errorf("production: stock entries: %w", err)
		}
		if se != "" {
			return &domainprod.RuleError{
				Kind:    domainprod.ErrStockEntryExists,
				Message: fmt.Sprintf("existe el stock entry enviado %s contra esta orden; no se puede cancelar", se),
			}
		}
		o.DocStatus = entity.DocStatusCancelled
		o.Status = entity.ProductionStatusCancelled
		if err := updatePlanned(ctx, r.Bins, o, o.Qty.Neg()); err != nil {
			return err
		}
		o.UpdatedAt = time.Now()
		return r.Orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("production_order", o.ID).Msg("orden de producción cancelada")
	return o, nil
}

// Stop detiene la orden y libera la cantidad pendiente del bin.
func (uc *OrderUseCase) Stop(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	return uc.stopUnstop(ctx, id, entity.ProductionStatusStopped)
}

// Unstop reanuda la orden; el estado se deriva de la cantidad producida.
func (uc *OrderUseCase) Unstop(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	return uc.stopUnstop(ctx, id, "")
}

func (uc *OrderUseCase) stopUnstop(ctx context.Context, id, requested string) (*entity.ProductionOrder, error) {
	var o *entity.ProductionOrder
	err := uc.tx.RunProduction(ctx, func(r Repos) error {
		var err error
		if o, err = load(ctx, r, id); err != nil {
			return err
		}
		if o.DocStatus != entity.DocStatusSubmitted {
			return domain.ErrConflict
		}
		o.Status = domainprod.StatusAfter(o.Status, requested, o.Qty, o.ProducedQty)
		if err := updatePlanned(ctx, r.Bins, o, domainprod.PlannedQtyDelta(requested, o.Qty, o.ProducedQty)); err != nil {
			return err
		}
		o.UpdatedAt = time.Now()
		return r.Orders.Update(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("production_order", o.ID).Str("status", o.Status).Msg("estado de orden de producción actualizado")
	return o, nil
}

// ItemDetails devuelve UOM, descripción y BOM por defecto de un artículo vigente.
func (uc *OrderUseCase) ItemDetails(ctx context.Context, itemCode string) (*ItemDetails, error) {
	item, err := uc.items.GetByCode(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf("production: obtener artículo: %w", err)
	}
	if item == nil || item.IsEndOfLife(time.Now()) {
		return nil, domain.ErrNotFound
	}
	out := &ItemDetails{StockUOM: item.StockUOM, Description: item.Description}
	err = uc.tx.RunProduction(ctx, func(r Repos) error {
		bom, err := r.BOMs.GetDefaultForItem(ctx, item.Code)
		if err != nil {
			return err
		}
		if bom != nil {
			out.BOMNo = bom.Name
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("production: bom por defecto: %w", err)
	}
	return out, nil
}

// MakeStockEntry arma el borrador de Stock Entry de la orden para el propósito indicado.
func (uc *OrderUseCase) MakeStockEntry(ctx context.Context, id, purpose string) (*entity.StockEntryDraft, error) {
	var o *entity.ProductionOrder
	err := uc.tx.RunProduction(ctx, func(r Repos) error {
		var err error
		o, err = load(ctx, r, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return domainprod.MakeStockEntry(o, purpose)
}

func load(ctx context.Context, r Repos, id string) (*entity.ProductionOrder, error) {
	o, err := r.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("production: obtener orden: %w", err)
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func validate(ctx context.Context, r Repos, o *entity.ProductionOrder) error {
	if o.DocStatus == entity.DocStatusDraft {
		o.Status = entity.ProductionStatusDraft
	}
	if err := domainprod.ValidateStatus(o.Status); err != nil {
		return err
	}

	if o.BOMNo != "" {
		bom, err := r.BOMs.GetByName(ctx, o.BOMNo)
		if err != nil {
			return fmt.Errorf("production: bom: %w", err)
		}
		if bom == nil || bom.DocStatus != entity.DocStatusSubmitted || !bom.IsActive || bom.Item != o.ProductionItem {
			return &domainprod.RuleError{
				Kind: domainprod.ErrIncorrectBOM,
				Message: fmt.Sprintf("lista de materiales incorrecta: %s; puede no existir, estar inactiva, "+
					"no estar enviada o ser de otro artículo", o.BOMNo),
			}
		}
	}

	if o.SalesOrder != "" {
		so, err := r.SalesOrders.GetByName(ctx, o.SalesOrder)
		if err != nil {
			return fmt.Errorf("production: pedido de venta: %w", err)
		}
		if so == nil || so.DocStatus != entity.DocStatusSubmitted {
			return &domainprod.RuleError{
				Kind:    domainprod.ErrInvalidSalesOrder,
				Message: fmt.Sprintf("el pedido de venta %s no es válido", o.SalesOrder),
			}
		}
		if o.ExpectedDeliveryDate == nil {
			o.ExpectedDeliveryDate = so.DeliveryDate
		}
		if err := checkAgainstSalesOrder(ctx, r, o); err != nil {
			return err
		}
	}

	for _, wh := range []string{o.FGWarehouse, o.WIPWarehouse} {
		if wh == "" {
			continue
		}
		w, err := r.Warehouses.GetByID(ctx, wh)
		if err != nil {
			return fmt.Errorf("production: bodega: %w", err)
		}
		if w == nil || w.CompanyID != o.Company {
			return &domainprod.RuleError{
				Kind:    domainprod.ErrWarehouseCompany,
				Message: fmt.Sprintf("la bodega %s no pertenece a la empresa %s", wh, o.Company),
			}
		}
	}

	if o.StockUOM != "" {
		uom, err := r.UOMs.GetByName(ctx, o.StockUOM)
		if err != nil {
			return fmt.Errorf("production: uom: %w", err)
		}
		if err := domainprod.CheckWholeNumber(uom, o.Qty, o.ProducedQty); err != nil {
			return err
		}
	}
	return nil
}

func checkAgainstSalesOrder(ctx context.Context, r Repos, o *entity.ProductionOrder) error {
	ordered, err := r.Orders.SumQtyAgainstSalesOrder(ctx, o.ProductionItem, o.SalesOrder, o.ID)
	if err != nil {
		return fmt.Errorf("production: cantidad ordenada: %w", err)
	}
	soQty, err := r.SalesOrders.SumItemQty(ctx, o.SalesOrder, o.ProductionItem)
	if err != nil {
		return fmt.Errorf("production: cantidad del pedido: %w", err)
	}
	packed, err := r.SalesOrders.SumPackedQty(ctx, o.SalesOrder, o.ProductionItem)
	if err != nil {
		return fmt.Errorf("production: cantidad empacada: %w", err)
	}
	return domainprod.CheckOverProduction(o.ProductionItem, o.SalesOrder, ordered, o.Qty, soQty.Add(packed))
}

func updatePlanned(ctx context.Context, bins repository.BinRepository, o *entity.ProductionOrder, delta decimal.Decimal) error {
	bin, err := bins.GetForUpdate(ctx, o.ProductionItem, o.FGWarehouse)
	if err != nil {
		return fmt.Errorf("production: bin: %w", err)
	}
	bin.ItemCode = o.ProductionItem
	bin.Warehouse = o.FGWarehouse
	if bin.StockUOM == "" {
		bin.StockUOM = o.StockUOM
	}
	bin.PlannedQty = bin.PlannedQty.Add(delta)
	bin.RecalculateProjected()
	bin.UpdatedAt = time.Now()
	return bins.Upsert(ctx, bin)
}
