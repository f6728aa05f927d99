package uom

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Items  repository.ItemRepository
	UOMs   repository.UOMRepository
	Ledger repository.StockLedgerRepository
	Bins   repository.BinRepository
}

// TxRunner ejecuta fn dentro de una transacción con los repositorios del cambio de UOM.
type TxRunner interface {
	RunUOM(ctx context.Context, fn func(r Repos) error) error
}

// ItemCacheInvalidator descarta el artículo de la caché tras cambiar su maestro.
type ItemCacheInvalidator interface {
	Forget(ctx context.Context, code string)
}

// ReplaceUseCase cambia la unidad de medida de stock de un artículo en libro, bins y maestro.
type ReplaceUseCase struct {
	tx    TxRunner
	cache ItemCacheInvalidator
	log   *logger.Logger
}

// NewReplaceUseCase construye el caso de uso. cache puede ser nil.
func NewReplaceUseCase(tx TxRunner, cache ItemCacheInvalidator, log *logger.Logger) *ReplaceUseCase {
	return &ReplaceUseCase{tx: tx, cache: cache, log: log}
}

// Result resumen del cambio.
type Result struct {
	ItemCode           string
	NewStockUOM        string
	LedgerEntries      int
	BinsUpdated        int
	WarehousesReposted int
}

// CurrentStockUOM devuelve la UOM de stock actual del artículo.
func (uc *ReplaceUseCase) CurrentStockUOM(ctx context.Context, itemCode string) (string, error) {
	var current string
	err := uc.tx.RunUOM(ctx, func(r Repos) error {
		item, err := r.Items.GetByCode(ctx, itemCode)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		current = item.StockUOM
		return nil
	})
	return current, err
}

// Replace valida y aplica el cambio de UOM en una sola transacción: convierte el libro, escala
// los bins, actualiza el maestro y, si el factor no es 1, recalcula la valuación por bodega.
func (uc *ReplaceUseCase) Replace(ctx context.Context, req inventory.UOMReplace) (*Result, error) {
	if req.ItemCode == "" || req.NewStockUOM == "" {
		return nil, domain.ErrInvalidInput
	}
	res := &Result{ItemCode: req.ItemCode, NewStockUOM: req.NewStockUOM}
	err := uc.tx.RunUOM(ctx, func(r Repos) error {
		item, err := r.Items.GetByCode(ctx, req.ItemCode)
		if err != nil {
			return fmt.Errorf("uom: obtener artículo: %w", err)
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if req.CurrentStockUOM == "" {
			req.CurrentStockUOM = item.StockUOM
		}
		current, err := r.UOMs.GetByName(ctx, req.CurrentStockUOM)
		if err != nil {
			return fmt.Errorf("uom: uom actual: %w", err)
		}
		next, err := r.UOMs.GetByName(ctx, req.NewStockUOM)
		if err != nil {
			return fmt.Errorf("uom: uom nueva: %w", err)
		}
		if err := inventory.ValidateUOMReplace(req, item, current, next); err != nil {
			return err
		}

		if res.LedgerEntries, err = r.Ledger.ConvertItemUOM(ctx, item.Code, req.NewStockUOM, req.ConversionFactor); err != nil {
			return fmt.Errorf("uom: convertir libro: %w", err)
		}

		bins, err := r.Bins.ListByItem(ctx, item.Code)
		if err != nil {
			return fmt.Errorf("uom: bins: %w", err)
		}
		for _, b := range bins {
			inventory.ScaleBin(b, req.NewStockUOM, req.ConversionFactor)
			b.UpdatedAt = time.Now()
			if err := r.Bins.Upsert(ctx, b); err != nil {
				return fmt.Errorf("uom: actualizar bin: %w", err)
			}
		}
		res.BinsUpdated = len(bins)

		if err := r.Items.UpdateStockUOM(ctx, item.Code, req.NewStockUOM); err != nil {
			return fmt.Errorf("uom: actualizar artículo: %w", err)
		}

		if !req.ConversionFactor.Equal(decimal.NewFromInt(1)) {
			warehouses, err := r.Ledger.ListWarehousesForItem(ctx, item.Code)
			if err != nil {
				return fmt.Errorf("uom: bodegas: %w", err)
			}
			for _, wh := range warehouses {
				if err := stock.RepostItemWarehouse(ctx, r.Ledger, r.Bins, item.Code, wh); err != nil {
					return err
				}
			}
			res.WarehousesReposted = len(warehouses)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.Forget(ctx, req.ItemCode)
	}
	uc.log.Info().Str("item_code", req.ItemCode).Str("new_stock_uom", req.NewStockUOM).
		Str("factor", req.ConversionFactor.String()).Int("ledger_entries", res.LedgerEntries).
		Msg("UOM de stock reemplazada")
	return res, nil
}
