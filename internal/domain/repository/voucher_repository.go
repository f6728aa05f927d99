package repository

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// VoucherRepository define el puerto de lectura de comprobantes de origen y sus líneas.
type VoucherRepository interface {
	// Get devuelve nil, nil si no existe.
	Get(ctx context.Context, voucherType, voucherNo string) (*entity.Voucher, error)
	ListItems(ctx context.Context, voucherType, voucherNo string) ([]*entity.VoucherItem, error)
	UpdateItemSerialNos(ctx context.Context, itemID string, serialNos []string) error
	// FirstSubmittedStockEntry devuelve el primer Stock Entry enviado contra la orden de producción ("" si no hay).
	FirstSubmittedStockEntry(ctx context.Context, productionOrder string) (string, error)
}
