package serialno

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	domainsn "github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

// resync recalcula el registro del número de serie desde el libro de stock y lo guarda.
// items puede ser nil; en ese caso no se refrescan los datos del artículo.
// La bodega se conserva salvo con rebuildWarehouse (cancelaciones), donde se toma del historial.
func resync(ctx context.Context, r Repos, items repository.ItemRepository, serialNo string, rebuildWarehouse bool) (*entity.SerialNo, error) {
	sr, err := r.SerialNos.GetForUpdate(ctx, serialNo)
	if err != nil {
		return nil, fmt.Errorf("resync: obtener serie: %w", err)
	}
	if sr == nil {
		return nil, domain.ErrNotFound
	}

	history, err := r.Ledger.ListBySerialNo(ctx, sr.ItemCode, serialNo)
	if err != nil {
		return nil, fmt.Errorf("resync: historial: %w", err)
	}
	m := domainsn.PickMovements(serialNo, history)
	p, err := provenance(ctx, r.Vouchers, m)
	if err != nil {
		return nil, err
	}

	next := *sr
	if items != nil {
		item, err := items.GetByCode(ctx, sr.ItemCode)
		if err != nil {
			return nil, fmt.Errorf("resync: artículo: %w", err)
		}
		if item != nil {
			domainsn.ApplyItemDetails(&next, item)
		}
	}
	next = domainsn.DeriveState(next, m, p, time.Now())
	if rebuildWarehouse {
		next.Warehouse = domainsn.RebuildWarehouse(m)
	}
	next.UpdatedAt = time.Now()
	if err := r.SerialNos.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("resync: guardar serie: %w", err)
	}
	return &next, nil
}

// provenance resuelve desde los comprobantes el propósito del último movimiento (Stock Entry),
// el proveedor de la recepción de compra y el cliente de la entrega.
func provenance(ctx context.Context, vouchers repository.VoucherRepository, m domainsn.Movements) (domainsn.Provenance, error) {
	var p domainsn.Provenance
	if m.Last != nil && m.Last.VoucherType == entity.VoucherTypeStockEntry {
		v, err := vouchers.Get(ctx, m.Last.VoucherType, m.Last.VoucherNo)
		if err != nil {
			return p, fmt.Errorf("resync: comprobante %s: %w", m.Last.VoucherNo, err)
		}
		if v != nil {
			p.LastDocumentType = v.Purpose
		}
	}
	if m.Purchase != nil && m.Purchase.VoucherType == entity.VoucherTypePurchaseReceipt {
		v, err := vouchers.Get(ctx, m.Purchase.VoucherType, m.Purchase.VoucherNo)
		if err != nil {
			return p, fmt.Errorf("resync: comprobante %s: %w", m.Purchase.VoucherNo, err)
		}
		if v != nil {
			p.Supplier, p.SupplierName = v.Party, v.PartyName
		}
	}
	if m.Delivery != nil && entity.IsDeliveryVoucher(m.Delivery.VoucherType) {
		v, err := vouchers.Get(ctx, m.Delivery.VoucherType, m.Delivery.VoucherNo)
		if err != nil {
			return p, fmt.Errorf("resync: comprobante %s: %w", m.Delivery.VoucherNo, err)
		}
		if v != nil {
			p.Customer, p.CustomerName = v.Party, v.PartyName
		}
	}
	return p, nil
}
