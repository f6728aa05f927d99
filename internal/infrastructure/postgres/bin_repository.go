package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.BinRepository = (*BinRepo)(nil)

// BinRepo implementación de BinRepository sobre PostgreSQL (usable con pool o tx).
type BinRepo struct {
	q Querier
}

// NewBinRepository construye el adaptador de bins. Pasar pool o tx (Querier).
func NewBinRepository(q Querier) *BinRepo {
	return &BinRepo{q: q}
}

const binColumns = `
	item_code, warehouse, stock_uom, actual_qty, ordered_qty, indented_qty,
	reserved_qty, planned_qty, projected_qty, valuation_rate, updated_at`

func scanBin(row pgx.Row) (*entity.Bin, error) {
	var b entity.Bin
	err := row.Scan(
		&b.ItemCode, &b.Warehouse, &b.StockUOM, &b.ActualQty, &b.OrderedQty, &b.IndentedQty,
		&b.ReservedQty, &b.PlannedQty, &b.ProjectedQty, &b.ValuationRate, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetForUpdate obtiene el bin y bloquea la fila (SELECT FOR UPDATE); si no existe devuelve un bin en cero.
func (r *BinRepo) GetForUpdate(ctx context.Context, itemCode, warehouse string) (*entity.Bin, error) {
	b, err := scanBin(r.q.QueryRow(ctx,
		`SELECT `+binColumns+` FROM bins WHERE item_code = $1 AND warehouse = $2 FOR UPDATE`,
		itemCode, warehouse))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Bin{ItemCode: itemCode, Warehouse: warehouse}, nil
		}
		return nil, fmt.Errorf("get bin for update: %w", err)
	}
	return b, nil
}

// Upsert inserta o actualiza las cantidades del bin (por artículo y bodega).
func (r *BinRepo) Upsert(ctx context.Context, b *entity.Bin) error {
	query := `
		INSERT INTO bins (item_code, warehouse, stock_uom, actual_qty, ordered_qty, indented_qty,
			reserved_qty, planned_qty, projected_qty, valuation_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (item_code, warehouse)
		DO UPDATE SET stock_uom = EXCLUDED.stock_uom, actual_qty = EXCLUDED.actual_qty,
			ordered_qty = EXCLUDED.ordered_qty, indented_qty = EXCLUDED.indented_qty,
			reserved_qty = EXCLUDED.reserved_qty, planned_qty = EXCLUDED.planned_qty,
			projected_qty = EXCLUDED.projected_qty, valuation_rate = EXCLUDED.valuation_rate,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		b.ItemCode, b.Warehouse, b.StockUOM, b.ActualQty, b.OrderedQty, b.IndentedQty,
		b.ReservedQty, b.PlannedQty, b.ProjectedQty, b.ValuationRate,
	)
	if err != nil {
		return fmt.Errorf("upsert bin: %w", err)
	}
	return nil
}

// ListByItem lista los bins del artículo en todas las bodegas.
func (r *BinRepo) ListByItem(ctx context.Context, itemCode string) ([]*entity.Bin, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+binColumns+` FROM bins WHERE item_code = $1 ORDER BY warehouse`, itemCode)
	if err != nil {
		return nil, fmt.Errorf("list bins: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bin
	for rows.Next() {
		b, err := scanBin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bin: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
