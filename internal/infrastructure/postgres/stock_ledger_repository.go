package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador del libro de stock. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

const ledgerColumns = `
	id, item_code, warehouse, company, posting_date, posting_time::text,
	voucher_type, voucher_no, voucher_detail_no, actual_qty, incoming_rate,
	qty_after_transaction, valuation_rate, stock_uom, serial_no, is_cancelled, created_at`

func scanLedgerEntries(rows pgx.Rows) ([]*entity.StockLedgerEntry, error) {
	defer rows.Close()
	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		var serials string
		if err := rows.Scan(
			&e.ID, &e.ItemCode, &e.Warehouse, &e.Company, &e.PostingDate, &e.PostingTime,
			&e.VoucherType, &e.VoucherNo, &e.VoucherDetailNo, &e.ActualQty, &e.IncomingRate,
			&e.QtyAfterTransaction, &e.ValuationRate, &e.StockUOM, &serials, &e.IsCancelled, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock ledger entry: %w", err)
		}
		e.SerialNos = serialno.Parse(serials)
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create inserta un movimiento del libro de stock.
func (r *StockLedgerRepo) Create(ctx context.Context, e *entity.StockLedgerEntry) error {
	query := `
		INSERT INTO stock_ledger_entries (
			id, item_code, warehouse, company, posting_date, posting_time,
			voucher_type, voucher_no, voucher_detail_no, actual_qty, incoming_rate,
			qty_after_transaction, valuation_rate, stock_uom, serial_no, is_cancelled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::text::time, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, now())`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ItemCode, e.Warehouse, e.Company, e.PostingDate, e.PostingTime,
		e.VoucherType, e.VoucherNo, e.VoucherDetailNo, e.ActualQty, e.IncomingRate,
		e.QtyAfterTransaction, e.ValuationRate, e.StockUOM, serialno.Format(e.SerialNos), e.IsCancelled,
	)
	if err != nil {
		return fmt.Errorf("insert stock ledger entry: %w", err)
	}
	return nil
}

// ListBySerialNo devuelve los movimientos vigentes del artículo que mencionan la serie, del más reciente al más antiguo.
func (r *StockLedgerRepo) ListBySerialNo(ctx context.Context, itemCode, serialNo string) ([]*entity.StockLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM stock_ledger_entries
		WHERE item_code = $1 AND is_cancelled = FALSE AND serial_no LIKE '%' || $2 || '%'
		ORDER BY posting_date DESC, posting_time DESC, id DESC`
	rows, err := r.q.Query(ctx, query, itemCode, serialNo)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger by serial no: %w", err)
	}
	return scanLedgerEntries(rows)
}

// ListByVoucher devuelve los movimientos vigentes de un comprobante.
func (r *StockLedgerRepo) ListByVoucher(ctx context.Context, voucherType, voucherNo string) ([]*entity.StockLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM stock_ledger_entries
		WHERE voucher_type = $1 AND voucher_no = $2 AND is_cancelled = FALSE
		ORDER BY posting_date, posting_time, id`
	rows, err := r.q.Query(ctx, query, voucherType, voucherNo)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger by voucher: %w", err)
	}
	return scanLedgerEntries(rows)
}

// CancelVoucher marca como cancelados los movimientos del comprobante.
func (r *StockLedgerRepo) CancelVoucher(ctx context.Context, voucherType, voucherNo string) (int, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock_ledger_entries SET is_cancelled = TRUE
		 WHERE voucher_type = $1 AND voucher_no = $2 AND is_cancelled = FALSE`,
		voucherType, voucherNo)
	if err != nil {
		return 0, fmt.Errorf("cancel stock ledger voucher: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// ListByItemWarehouse devuelve los movimientos vigentes en orden cronológico ascendente.
func (r *StockLedgerRepo) ListByItemWarehouse(ctx context.Context, itemCode, warehouse string) ([]*entity.StockLedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM stock_ledger_entries
		WHERE item_code = $1 AND warehouse = $2 AND is_cancelled = FALSE
		ORDER BY posting_date, posting_time, id`
	rows, err := r.q.Query(ctx, query, itemCode, warehouse)
	if err != nil {
		return nil, fmt.Errorf("list stock ledger by item warehouse: %w", err)
	}
	return scanLedgerEntries(rows)
}

// ListWarehousesForItem lista las bodegas con movimientos del artículo.
func (r *StockLedgerRepo) ListWarehousesForItem(ctx context.Context, itemCode string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT warehouse FROM stock_ledger_entries WHERE item_code = $1 ORDER BY warehouse`,
		itemCode)
	if err != nil {
		return nil, fmt.Errorf("list warehouses for item: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// UpdateValuation guarda el saldo y la tasa de valoración recalculados del movimiento.
func (r *StockLedgerRepo) UpdateValuation(ctx context.Context, id string, qtyAfterTransaction, valuationRate decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_ledger_entries SET qty_after_transaction = $2, valuation_rate = $3 WHERE id = $1`,
		id, qtyAfterTransaction, valuationRate)
	if err != nil {
		return fmt.Errorf("update stock ledger valuation: %w", err)
	}
	return nil
}

// ConvertItemUOM cambia la UOM de todos los movimientos del artículo y escala actual_qty por factor.
func (r *StockLedgerRepo) ConvertItemUOM(ctx context.Context, itemCode, newUOM string, factor decimal.Decimal) (int, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock_ledger_entries SET stock_uom = $2, actual_qty = actual_qty * $3 WHERE item_code = $1`,
		itemCode, newUOM, factor)
	if err != nil {
		return 0, fmt.Errorf("convert stock ledger uom: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
