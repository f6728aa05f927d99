package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// StockLedgerRepository define el puerto de persistencia del libro de stock.
type StockLedgerRepository interface {
	Create(ctx context.Context, entry *entity.StockLedgerEntry) error
	// ListBySerialNo devuelve los movimientos no cancelados del artículo cuyo texto de series
	// contiene serialNo (coincidencia por subcadena), ordenados por
	// posting_date DESC, posting_time DESC, id DESC.
	ListBySerialNo(ctx context.Context, itemCode, serialNo string) ([]*entity.StockLedgerEntry, error)
	ListByVoucher(ctx context.Context, voucherType, voucherNo string) ([]*entity.StockLedgerEntry, error)
	// CancelVoucher marca como cancelados los movimientos del comprobante.
	CancelVoucher(ctx context.Context, voucherType, voucherNo string) (int, error)
	// ListByItemWarehouse devuelve los movimientos no cancelados en orden cronológico ascendente.
	ListByItemWarehouse(ctx context.Context, itemCode, warehouse string) ([]*entity.StockLedgerEntry, error)
	ListWarehousesForItem(ctx context.Context, itemCode string) ([]string, error)
	UpdateValuation(ctx context.Context, id string, qtyAfterTransaction, valuationRate decimal.Decimal) error
	// ConvertItemUOM cambia la UOM de todos los movimientos del artículo y multiplica actual_qty por factor.
	ConvertItemUOM(ctx context.Context, itemCode, newUOM string, factor decimal.Decimal) (int, error)
}
