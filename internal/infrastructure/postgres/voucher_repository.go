package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

// VoucherRepo lectura de comprobantes de origen y sus líneas.
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository construye el adaptador de comprobantes. Pasar pool o tx (Querier).
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: q}
}

// Get obtiene la cabecera del comprobante; nil, nil si no existe.
func (r *VoucherRepo) Get(ctx context.Context, voucherType, voucherNo string) (*entity.Voucher, error) {
	query := `
		SELECT voucher_type, voucher_no, company, COALESCE(purpose, ''), COALESCE(party, ''),
			COALESCE(party_name, ''), COALESCE(production_order, ''), docstatus
		FROM vouchers WHERE voucher_type = $1 AND voucher_no = $2`
	var v entity.Voucher
	err := r.q.QueryRow(ctx, query, voucherType, voucherNo).Scan(
		&v.VoucherType, &v.VoucherNo, &v.Company, &v.Purpose, &v.Party,
		&v.PartyName, &v.ProductionOrder, &v.DocStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	return &v, nil
}

// ListItems devuelve las líneas del comprobante en su orden original.
func (r *VoucherRepo) ListItems(ctx context.Context, voucherType, voucherNo string) ([]*entity.VoucherItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, voucher_type, voucher_no, item_code, serial_no
		FROM voucher_items WHERE voucher_type = $1 AND voucher_no = $2
		ORDER BY idx, id`, voucherType, voucherNo)
	if err != nil {
		return nil, fmt.Errorf("list voucher items: %w", err)
	}
	defer rows.Close()
	var list []*entity.VoucherItem
	for rows.Next() {
		var it entity.VoucherItem
		var serials string
		if err := rows.Scan(&it.ID, &it.VoucherType, &it.VoucherNo, &it.ItemCode, &serials); err != nil {
			return nil, fmt.Errorf("scan voucher item: %w", err)
		}
		it.SerialNos = serialno.Parse(serials)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateItemSerialNos reemplaza el texto de series de una línea.
func (r *VoucherRepo) UpdateItemSerialNos(ctx context.Context, itemID string, serialNos []string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE voucher_items SET serial_no = $2 WHERE id = $1`,
		itemID, serialno.Format(serialNos))
	if err != nil {
		return fmt.Errorf("update voucher item serial nos: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FirstSubmittedStockEntry devuelve el primer Stock Entry enviado contra la orden ("" si no hay).
func (r *VoucherRepo) FirstSubmittedStockEntry(ctx context.Context, productionOrder string) (string, error) {
	var no string
	err := r.q.QueryRow(ctx, `
		SELECT voucher_no FROM vouchers
		WHERE voucher_type = $1 AND production_order = $2 AND docstatus = $3
		ORDER BY voucher_no LIMIT 1`,
		entity.VoucherTypeStockEntry, productionOrder, entity.DocStatusSubmitted).Scan(&no)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("first submitted stock entry: %w", err)
	}
	return no, nil
}
