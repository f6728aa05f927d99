package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var (
	_ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)
	_ repository.BOMRepository             = (*BOMRepo)(nil)
	_ repository.SalesOrderRepository      = (*SalesOrderRepo)(nil)
)

// ProductionOrderRepo órdenes de producción sobre PostgreSQL.
type ProductionOrderRepo struct {
	q Querier
}

func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

// GetByID obtiene una orden; nil, nil si no existe.
func (r *ProductionOrderRepo) GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error) {
	query := `
		SELECT id, company, production_item, COALESCE(bom_no, ''), use_multi_level_bom, qty, produced_qty,
			stock_uom, COALESCE(sales_order, ''), expected_delivery_date, fg_warehouse,
			COALESCE(wip_warehouse, ''), status, docstatus, created_at, updated_at
		FROM production_orders WHERE id = $1`
	var o entity.ProductionOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Company, &o.ProductionItem, &o.BOMNo, &o.UseMultiLevelBOM, &o.Qty, &o.ProducedQty,
		&o.StockUOM, &o.SalesOrder, &o.ExpectedDeliveryDate, &o.FGWarehouse,
		&o.WIPWarehouse, &o.Status, &o.DocStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production order: %w", err)
	}
	return &o, nil
}

// Create persiste una orden nueva.
func (r *ProductionOrderRepo) Create(ctx context.Context, o *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (id, company, production_item, bom_no, use_multi_level_bom, qty,
			produced_qty, stock_uom, sales_order, expected_delivery_date, fg_warehouse, wip_warehouse,
			status, docstatus, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''), $10, $11, NULLIF($12, ''),
			$13, $14, now(), now())`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Company, o.ProductionItem, o.BOMNo, o.UseMultiLevelBOM, o.Qty,
		o.ProducedQty, o.StockUOM, o.SalesOrder, o.ExpectedDeliveryDate, o.FGWarehouse, o.WIPWarehouse,
		o.Status, o.DocStatus,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

// Update guarda estado, cantidades y bodegas de la orden.
func (r *ProductionOrderRepo) Update(ctx context.Context, o *entity.ProductionOrder) error {
	query := `
		UPDATE production_orders SET bom_no = NULLIF($2, ''), use_multi_level_bom = $3, qty = $4,
			produced_qty = $5, stock_uom = $6, sales_order = NULLIF($7, ''), expected_delivery_date = $8,
			fg_warehouse = $9, wip_warehouse = NULLIF($10, ''), status = $11, docstatus = $12, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.BOMNo, o.UseMultiLevelBOM, o.Qty,
		o.ProducedQty, o.StockUOM, o.SalesOrder, o.ExpectedDeliveryDate,
		o.FGWarehouse, o.WIPWarehouse, o.Status, o.DocStatus,
	)
	if err != nil {
		return fmt.Errorf("update production order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SumQtyAgainstSalesOrder suma qty de las órdenes no canceladas del artículo contra el pedido.
func (r *ProductionOrderRepo) SumQtyAgainstSalesOrder(ctx context.Context, item, salesOrder, excludeID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(qty), 0) FROM production_orders
		WHERE production_item = $1 AND sales_order = $2 AND docstatus < $3 AND id <> $4`,
		item, salesOrder, entity.DocStatusCancelled, excludeID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum production qty against sales order: %w", err)
	}
	return total, nil
}

// BOMRepo lectura de listas de materiales.
type BOMRepo struct {
	q Querier
}

func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

func (r *BOMRepo) GetByName(ctx context.Context, name string) (*entity.BOM, error) {
	return r.get(ctx, `SELECT name, item, is_active, is_default, docstatus FROM boms WHERE name = $1`, name)
}

// GetDefaultForItem devuelve la BOM activa y por defecto del artículo; nil, nil si no hay.
func (r *BOMRepo) GetDefaultForItem(ctx context.Context, item string) (*entity.BOM, error) {
	return r.get(ctx, `
		SELECT name, item, is_active, is_default, docstatus FROM boms
		WHERE item = $1 AND is_default = TRUE AND is_active = TRUE
		ORDER BY name LIMIT 1`, item)
}

func (r *BOMRepo) get(ctx context.Context, query string, arg string) (*entity.BOM, error) {
	var b entity.BOM
	err := r.q.QueryRow(ctx, query, arg).Scan(&b.Name, &b.Item, &b.IsActive, &b.IsDefault, &b.DocStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	return &b, nil
}

// SalesOrderRepo lectura de pedidos de venta.
type SalesOrderRepo struct {
	q Querier
}

func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

func (r *SalesOrderRepo) GetByName(ctx context.Context, name string) (*entity.SalesOrder, error) {
	var so entity.SalesOrder
	err := r.q.QueryRow(ctx, `SELECT name, delivery_date, docstatus FROM sales_orders WHERE name = $1`, name).
		Scan(&so.Name, &so.DeliveryDate, &so.DocStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &so, nil
}

func (r *SalesOrderRepo) SumItemQty(ctx context.Context, salesOrder, item string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(qty), 0) FROM sales_order_items WHERE sales_order = $1 AND item_code = $2`,
		salesOrder, item).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales order item qty: %w", err)
	}
	return total, nil
}

// SumPackedQty suma las cantidades del artículo empacadas dentro de bundles del pedido.
func (r *SalesOrderRepo) SumPackedQty(ctx context.Context, salesOrder, item string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(qty), 0) FROM packed_items
		WHERE parent_type = 'Sales Order' AND parent = $1 AND item_code = $2`,
		salesOrder, item).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales order packed qty: %w", err)
	}
	return total, nil
}
