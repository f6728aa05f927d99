package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del maestro de artículos sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByCode obtiene un artículo por código; nil, nil si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	query := `
		SELECT code, name, description, item_group, brand, stock_uom, is_stock_item, has_serial_no,
			COALESCE(serial_no_series, ''), warranty_period, end_of_life, created_at, updated_at
		FROM items WHERE code = $1`
	var it entity.Item
	err := r.q.QueryRow(ctx, query, code).Scan(
		&it.Code, &it.Name, &it.Description, &it.ItemGroup, &it.Brand, &it.StockUOM, &it.IsStockItem,
		&it.HasSerialNo, &it.SerialNoSeries, &it.WarrantyPeriod, &it.EndOfLife, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Create persiste un artículo (carga inicial del maestro).
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO items (code, name, description, item_group, brand, stock_uom, is_stock_item,
			has_serial_no, serial_no_series, warranty_period, end_of_life, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, now(), now())`
	_, err := r.q.Exec(ctx, query,
		it.Code, it.Name, it.Description, it.ItemGroup, it.Brand, it.StockUOM, it.IsStockItem,
		it.HasSerialNo, it.SerialNoSeries, it.WarrantyPeriod, it.EndOfLife,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// UpdateStockUOM cambia la unidad de stock del artículo.
func (r *ItemRepo) UpdateStockUOM(ctx context.Context, code, uom string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE items SET stock_uom = $2, updated_at = now() WHERE code = $1`, code, uom)
	if err != nil {
		return fmt.Errorf("update item stock uom: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
