package serialno

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	domainsn "github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// SerialNoUseCase administración de números de serie: alta manual, edición, baja, renombrado y resincronización.
type SerialNoUseCase struct {
	tx    TxRunner
	items repository.ItemRepository
	log   *logger.Logger
}

// NewSerialNoUseCase construye el caso de uso.
func NewSerialNoUseCase(tx TxRunner, items repository.ItemRepository, log *logger.Logger) *SerialNoUseCase {
	return &SerialNoUseCase{tx: tx, items: items, log: log}
}

// RegisterInput alta manual de un número de serie. Warehouse se recibe solo para rechazarlo.
type RegisterInput struct {
	SerialNo           string
	ItemCode           string
	Company            string
	Warehouse          string
	WarrantyExpiryDate *time.Time
	AMCExpiryDate      *time.Time
}

// UpdateInput campos editables. ItemCode y Warehouse se reciben solo para validar que no cambien.
type UpdateInput struct {
	ItemCode           *string
	Warehouse          *string
	WarrantyExpiryDate *time.Time
	AMCExpiryDate      *time.Time
}

// Register da de alta un número de serie fuera del libro de stock (sin bodega, estado Not Available).
func (uc *SerialNoUseCase) Register(ctx context.Context, in RegisterInput) (*entity.SerialNo, error) {
	sn := domainsn.Normalize(in.SerialNo)
	if sn == "" || in.ItemCode == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.items.GetByCode(ctx, in.ItemCode)
	if err != nil {
		return nil, fmt.Errorf("serial: obtener artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if err := domainsn.CheckItem(item); err != nil {
		return nil, err
	}

	now := time.Now()
	sr := &entity.SerialNo{
		SerialNo:           sn,
		ItemCode:           item.Code,
		Company:            in.Company,
		Warehouse:          in.Warehouse,
		Status:             entity.SerialNoStatusNotAvailable,
		WarrantyExpiryDate: in.WarrantyExpiryDate,
		AMCExpiryDate:      in.AMCExpiryDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := domainsn.CheckNew(sr); err != nil {
		return nil, err
	}
	domainsn.ApplyItemDetails(sr, item)
	sr.MaintenanceStatus = domainsn.MaintenanceStatus(sr.WarrantyExpiryDate, sr.AMCExpiryDate, now)

	err = uc.tx.Run(ctx, func(r Repos) error {
		exists, err := r.SerialNos.Exists(ctx, sn)
		if err != nil {
			return fmt.Errorf("serial: verificar existencia: %w", err)
		}
		if exists {
			return domain.ErrDuplicate
		}
		return r.SerialNos.Create(ctx, sr)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("serial_no", sn).Str("item_code", sr.ItemCode).Msg("número de serie registrado")
	return sr, nil
}

// GetByID devuelve el número de serie o domain.ErrNotFound.
func (uc *SerialNoUseCase) GetByID(ctx context.Context, serialNo string) (*entity.SerialNo, error) {
	var sr *entity.SerialNo
	err := uc.tx.Run(ctx, func(r Repos) error {
		var err error
		sr, err = r.SerialNos.GetByID(ctx, domainsn.Normalize(serialNo))
		return err
	})
	if err != nil {
		return nil, err
	}
	if sr == nil {
		return nil, domain.ErrNotFound
	}
	return sr, nil
}

// Update modifica las fechas de garantía y AMC. Artículo y bodega son inmutables fuera del libro.
func (uc *SerialNoUseCase) Update(ctx context.Context, serialNo string, in UpdateInput) (*entity.SerialNo, error) {
	sn := domainsn.Normalize(serialNo)
	var updated entity.SerialNo
	err := uc.tx.Run(ctx, func(r Repos) error {
		stored, err := r.SerialNos.GetForUpdate(ctx, sn)
		if err != nil {
			return fmt.Errorf("serial: obtener: %w", err)
		}
		if stored == nil {
			return domain.ErrNotFound
		}
		updated = *stored
		if in.ItemCode != nil {
			updated.ItemCode = *in.ItemCode
		}
		if in.Warehouse != nil {
			updated.Warehouse = *in.Warehouse
		}
		if err := domainsn.CheckUpdate(stored, &updated, false); err != nil {
			return err
		}
		updated.WarrantyExpiryDate = in.WarrantyExpiryDate
		updated.AMCExpiryDate = in.AMCExpiryDate

		item, err := uc.items.GetByCode(ctx, updated.ItemCode)
		if err != nil {
			return fmt.Errorf("serial: obtener artículo: %w", err)
		}
		if item != nil {
			domainsn.ApplyItemDetails(&updated, item)
		}
		now := time.Now()
		updated.MaintenanceStatus = domainsn.MaintenanceStatus(updated.WarrantyExpiryDate, updated.AMCExpiryDate, now)
		updated.UpdatedAt = now
		return r.SerialNos.Update(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina el número de serie si no fue entregado y no está en bodega.
func (uc *SerialNoUseCase) Delete(ctx context.Context, serialNo string) error {
	sn := domainsn.Normalize(serialNo)
	err := uc.tx.Run(ctx, func(r Repos) error {
		sr, err := r.SerialNos.GetForUpdate(ctx, sn)
		if err != nil {
			return fmt.Errorf("serial: obtener: %w", err)
		}
		if sr == nil {
			return domain.ErrNotFound
		}
		if err := domainsn.CheckDelete(sr); err != nil {
			return err
		}
		return r.SerialNos.Delete(ctx, sn)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("serial_no", sn).Msg("número de serie eliminado")
	return nil
}

// Rename cambia la clave del número de serie y reescribe todas las listas de series que lo mencionan.
// merge=true se rechaza siempre.
func (uc *SerialNoUseCase) Rename(ctx context.Context, oldSerialNo, newSerialNo string, merge bool) (*entity.SerialNo, error) {
	if err := domainsn.CheckRename(merge); err != nil {
		return nil, err
	}
	oldSN, newSN := domainsn.Normalize(oldSerialNo), domainsn.Normalize(newSerialNo)
	if oldSN == "" || newSN == "" || oldSN == newSN {
		return nil, domain.ErrInvalidInput
	}

	var renamed *entity.SerialNo
	var rewritten int
	err := uc.tx.Run(ctx, func(r Repos) error {
		sr, err := r.SerialNos.GetForUpdate(ctx, oldSN)
		if err != nil {
			return fmt.Errorf("serial: obtener: %w", err)
		}
		if sr == nil {
			return domain.ErrNotFound
		}
		exists, err := r.SerialNos.Exists(ctx, newSN)
		if err != nil {
			return fmt.Errorf("serial: verificar existencia: %w", err)
		}
		if exists {
			return domain.ErrDuplicate
		}
		if err := r.SerialNos.Rename(ctx, oldSN, newSN); err != nil {
			return fmt.Errorf("serial: renombrar: %w", err)
		}
		if rewritten, err = r.Rewriter.RewriteSerialNo(ctx, oldSN, newSN); err != nil {
			return fmt.Errorf("serial: reescribir listas: %w", err)
		}
		renamed, err = r.SerialNos.GetByID(ctx, newSN)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("serial_no", newSN).Str("old_serial_no", oldSN).Int("rows", rewritten).
		Msg("número de serie renombrado")
	return renamed, nil
}

// Resync recalcula el número de serie desde el libro de stock. Es idempotente.
func (uc *SerialNoUseCase) Resync(ctx context.Context, serialNo string) (*entity.SerialNo, error) {
	var sr *entity.SerialNo
	err := uc.tx.Run(ctx, func(r Repos) error {
		var err error
		sr, err = resync(ctx, r, uc.items, domainsn.Normalize(serialNo), false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sr, nil
}
