package serialno

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/naming"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	domainsn "github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// LedgerUseCase registra movimientos del libro de stock y mantiene sincronizados los números de serie.
type LedgerUseCase struct {
	tx    TxRunner
	items repository.ItemRepository
	log   *logger.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(tx TxRunner, items repository.ItemRepository, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{tx: tx, items: items, log: log}
}

// EntryInput datos de un movimiento a registrar. SerialNos es el texto delimitado
// (saltos de línea o comas) tal como llega del comprobante.
type EntryInput struct {
	ItemCode        string
	Warehouse       string
	Company         string
	PostingDate     time.Time
	PostingTime     string
	VoucherType     string
	VoucherNo       string
	VoucherDetailNo string
	ActualQty       decimal.Decimal
	IncomingRate    decimal.Decimal
	SerialNos       string
}

// ProcessEntry valida el movimiento contra las reglas de números de serie, autogenera series si
// corresponde, actualiza el bin (costo promedio), registra el movimiento y aplica sus efectos
// sobre cada número de serie. Todo ocurre en una sola transacción.
func (uc *LedgerUseCase) ProcessEntry(ctx context.Context, in EntryInput) (*entity.StockLedgerEntry, error) {
	if in.ItemCode == "" || in.Warehouse == "" || in.VoucherType == "" || in.VoucherNo == "" || in.ActualQty.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByCode(ctx, in.ItemCode)
	if err != nil {
		return nil, fmt.Errorf("ledger: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("ledger: generar id: %w", err)
	}
	now := time.Now()
	entry := &entity.StockLedgerEntry{
		ID:              id.String(),
		ItemCode:        item.Code,
		Warehouse:       in.Warehouse,
		Company:         in.Company,
		PostingDate:     in.PostingDate,
		PostingTime:     in.PostingTime,
		VoucherType:     in.VoucherType,
		VoucherNo:       in.VoucherNo,
		VoucherDetailNo: in.VoucherDetailNo,
		ActualQty:       in.ActualQty,
		IncomingRate:    in.IncomingRate,
		StockUOM:        item.StockUOM,
		SerialNos:       domainsn.Parse(in.SerialNos),
		CreatedAt:       now,
	}
	if entry.PostingDate.IsZero() {
		entry.PostingDate = now
	}
	if entry.PostingTime == "" {
		entry.PostingTime = now.Format("15:04:05")
	}

	err = uc.tx.Run(ctx, func(r Repos) error {
		registered, err := loadRegistered(ctx, r.SerialNos, entry.SerialNos)
		if err != nil {
			return err
		}
		if err := domainsn.ValidateEntry(entry, item, registered); err != nil {
			return err
		}
		if domainsn.NeedsGeneration(entry, item) {
			if entry.SerialNos, err = generate(ctx, r.Series, item.SerialNoSeries, entry); err != nil {
				return err
			}
			// Las series generadas pueden haberse dado de alta a mano antes.
			if registered, err = loadRegistered(ctx, r.SerialNos, entry.SerialNos); err != nil {
				return err
			}
			if err := domainsn.ValidateEntry(entry, item, registered); err != nil {
				return err
			}
		}
		if err := postToBin(ctx, r.Bins, item, entry); err != nil {
			return err
		}
		if err := r.Ledger.Create(ctx, entry); err != nil {
			return fmt.Errorf("ledger: registrar movimiento: %w", err)
		}
		for _, step := range domainsn.PlanApply(entry, registered) {
			if err := uc.applyStep(ctx, r, item, entry, step); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("item_code", entry.ItemCode).
		Str("voucher_no", entry.VoucherNo).
		Str("warehouse", entry.Warehouse).
		Str("actual_qty", entry.ActualQty.String()).
		Int("serial_nos", len(entry.SerialNos)).
		Msg("movimiento de stock registrado")
	return entry, nil
}

func (uc *LedgerUseCase) applyStep(ctx context.Context, r Repos, item *entity.Item, e *entity.StockLedgerEntry, step domainsn.Step) error {
	if step.Action == domainsn.ActionCreate {
		// alta en dos fases: primero sin bodega, luego la bodega del movimiento
		now := time.Now()
		sr := &entity.SerialNo{
			SerialNo:  step.SerialNo,
			ItemCode:  e.ItemCode,
			Company:   e.Company,
			Status:    entity.SerialNoStatusNotAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		}
		domainsn.ApplyItemDetails(sr, item)
		if err := r.SerialNos.Create(ctx, sr); err != nil {
			return fmt.Errorf("ledger: crear serie %s: %w", step.SerialNo, err)
		}
		uc.log.Info().Str("serial_no", step.SerialNo).Str("item_code", e.ItemCode).Msg("número de serie creado")
	}
	if err := r.SerialNos.UpdateWarehouse(ctx, step.SerialNo, step.Warehouse); err != nil {
		return fmt.Errorf("ledger: bodega de serie %s: %w", step.SerialNo, err)
	}
	_, err := resync(ctx, r, uc.items, step.SerialNo, false)
	return err
}

// CancelVoucher marca como cancelados los movimientos del comprobante, recalcula la valuación
// de cada artículo/bodega afectado y resincroniza todos los números de serie mencionados.
func (uc *LedgerUseCase) CancelVoucher(ctx context.Context, voucherType, voucherNo string) (int, error) {
	if voucherType == "" || voucherNo == "" {
		return 0, domain.ErrInvalidInput
	}
	var cancelled int
	err := uc.tx.Run(ctx, func(r Repos) error {
		entries, err := r.Ledger.ListByVoucher(ctx, voucherType, voucherNo)
		if err != nil {
			return fmt.Errorf("ledger: movimientos del comprobante: %w", err)
		}
		type key struct{ item, warehouse string }
		affected := map[key]struct{}{}
		serials := map[string]struct{}{}
		for _, e := range entries {
			if e.IsCancelled {
				continue
			}
			affected[key{e.ItemCode, e.Warehouse}] = struct{}{}
			for _, sn := range e.SerialNos {
				serials[sn] = struct{}{}
			}
		}
		if len(affected) == 0 {
			return domain.ErrNotFound
		}

		if cancelled, err = r.Ledger.CancelVoucher(ctx, voucherType, voucherNo); err != nil {
			return fmt.Errorf("ledger: cancelar comprobante: %w", err)
		}
		for k := range affected {
			if err := stock.RepostItemWarehouse(ctx, r.Ledger, r.Bins, k.item, k.warehouse); err != nil {
				return err
			}
		}
		for _, sn := range sortedKeys(serials) {
			if _, err := resync(ctx, r, uc.items, sn, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	uc.log.Info().Str("voucher_type", voucherType).Str("voucher_no", voucherNo).Int("entries", cancelled).
		Msg("comprobante cancelado en el libro de stock")
	return cancelled, nil
}

// SyncVoucherSerials copia a cada línea del comprobante los números de serie del movimiento
// con el mismo voucher_detail_no (incluye las series autogeneradas). Devuelve las líneas modificadas.
func (uc *LedgerUseCase) SyncVoucherSerials(ctx context.Context, voucherType, voucherNo string) (int, error) {
	if voucherType == "" || voucherNo == "" {
		return 0, domain.ErrInvalidInput
	}
	var updated int
	err := uc.tx.Run(ctx, func(r Repos) error {
		entries, err := r.Ledger.ListByVoucher(ctx, voucherType, voucherNo)
		if err != nil {
			return fmt.Errorf("ledger: movimientos del comprobante: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}
		lines, err := r.Vouchers.ListItems(ctx, voucherType, voucherNo)
		if err != nil {
			return fmt.Errorf("ledger: líneas del comprobante: %w", err)
		}
		for _, line := range lines {
			var serials []string
			for _, e := range entries {
				if e.VoucherDetailNo == line.ID {
					serials = e.SerialNos
					break
				}
			}
			if domainsn.Equal(line.SerialNos, serials) {
				continue
			}
			if err := r.Vouchers.UpdateItemSerialNos(ctx, line.ID, serials); err != nil {
				return fmt.Errorf("ledger: actualizar línea %s: %w", line.ID, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if updated > 0 {
		uc.log.Info().Str("voucher_no", voucherNo).Int("lines", updated).Msg("series sincronizadas en el comprobante")
	}
	return updated, nil
}

func loadRegistered(ctx context.Context, repo repository.SerialNoRepository, serials []string) (map[string]*entity.SerialNo, error) {
	registered := make(map[string]*entity.SerialNo, len(serials))
	for _, sn := range serials {
		sr, err := repo.GetForUpdate(ctx, sn)
		if err != nil {
			return nil, fmt.Errorf("ledger: obtener serie %s: %w", sn, err)
		}
		if sr != nil {
			registered[sn] = sr
		}
	}
	return registered, nil
}

func generate(ctx context.Context, series repository.NamingSeriesRepository, pattern string, e *entity.StockLedgerEntry) ([]string, error) {
	s, err := naming.Parse(pattern, e.PostingDate)
	if err != nil {
		return nil, err
	}
	n := domainsn.GenerationCount(e)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		next, err := series.NextValue(ctx, s.Prefix)
		if err != nil {
			return nil, fmt.Errorf("ledger: serie de numeración %s: %w", s.Prefix, err)
		}
		out = append(out, domainsn.Normalize(s.Name(next)))
	}
	return out, nil
}

// postToBin bloquea el bin (SELECT FOR UPDATE), valida el saldo en salidas y aplica el costo promedio.
func postToBin(ctx context.Context, bins repository.BinRepository, item *entity.Item, e *entity.StockLedgerEntry) error {
	bin, err := bins.GetForUpdate(ctx, e.ItemCode, e.Warehouse)
	if err != nil {
		return fmt.Errorf("ledger: bin: %w", err)
	}
	if !e.IsIncoming() && bin.ActualQty.Add(e.ActualQty).IsNegative() {
		return domain.ErrInsufficientStock
	}
	qty, rate := inventory.Post(bin.ActualQty, bin.ValuationRate, e)
	e.QtyAfterTransaction = qty
	e.ValuationRate = rate

	bin.ItemCode = e.ItemCode
	bin.Warehouse = e.Warehouse
	bin.StockUOM = item.StockUOM
	bin.ActualQty = qty
	bin.ValuationRate = rate
	bin.RecalculateProjected()
	bin.UpdatedAt = time.Now()
	return bins.Upsert(ctx, bin)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
