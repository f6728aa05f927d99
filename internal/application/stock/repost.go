// Package stock operaciones compartidas sobre el libro de stock y los bins.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// RepostItemWarehouse recalcula qty_after_transaction y valuation_rate de todos los movimientos
// vigentes del artículo en la bodega y deja el bin con el saldo resultante.
// Debe llamarse con repositorios atados a una transacción.
func RepostItemWarehouse(
	ctx context.Context,
	ledger repository.StockLedgerRepository,
	bins repository.BinRepository,
	itemCode, warehouse string,
) error {
	entries, err := ledger.ListByItemWarehouse(ctx, itemCode, warehouse)
	if err != nil {
		return fmt.Errorf("repost: listar movimientos: %w", err)
	}
	qty, rate := inventory.Repost(entries)
	for _, e := range entries {
		if err := ledger.UpdateValuation(ctx, e.ID, e.QtyAfterTransaction, e.ValuationRate); err != nil {
			return fmt.Errorf("repost: actualizar valuación: %w", err)
		}
	}

	bin, err := bins.GetForUpdate(ctx, itemCode, warehouse)
	if err != nil {
		return fmt.Errorf("repost: bin: %w", err)
	}
	bin.ActualQty = qty
	bin.ValuationRate = rate
	bin.RecalculateProjected()
	bin.UpdatedAt = time.Now()
	return bins.Upsert(ctx, bin)
}
