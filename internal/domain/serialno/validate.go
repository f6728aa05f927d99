package serialno

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// ValidateEntry aplica las reglas de números de serie a un movimiento antes de registrarlo.
// registered contiene los números de serie del movimiento que ya existen (clave = número de serie).
// Las reglas se evalúan en orden y gana la primera violación.
func ValidateEntry(e *entity.StockLedgerEntry, item *entity.Item, registered map[string]*entity.SerialNo) error {
	if !item.HasSerialNo {
		if len(e.SerialNos) > 0 {
			return newError(ErrSerialNoNotRequired,
				"el número de serie debe estar vacío para un artículo no serializado: %s", e.ItemCode)
		}
		return nil
	}

	if len(e.SerialNos) == 0 {
		if e.ActualQty.IsPositive() && item.SerialNoSeries != "" {
			return nil
		}
		return newError(ErrSerialNoRequired, "número de serie requerido para el artículo serializado: %s", e.ItemCode)
	}

	if !e.ActualQty.IsInteger() {
		return newError(ErrSerialNoQty, "la cantidad con números de serie no puede ser fraccionaria: %s (%s)",
			e.ItemCode, e.ActualQty.String())
	}
	if !e.ActualQty.Abs().Equal(decimal.NewFromInt(int64(len(e.SerialNos)))) {
		return newError(ErrSerialNoQty, "los números de serie no coinciden con la cantidad: %s (%s)",
			e.ItemCode, e.ActualQty.String())
	}

	if HasDuplicates(e.SerialNos) {
		return newError(ErrSerialNoDuplicate, "número de serie duplicado para el artículo: %s", e.ItemCode)
	}

	incoming := e.ActualQty.IsPositive()
	outgoing := e.ActualQty.IsNegative()
	for _, sn := range e.SerialNos {
		sr, ok := registered[sn]
		if !ok || sr == nil {
			if outgoing {
				return newError(ErrSerialNoNotExists, "el número de serie debe existir para darle salida: %s", sn)
			}
			continue
		}
		if sr.ItemCode != e.ItemCode {
			return newError(ErrSerialNoItem, "el número de serie no pertenece al artículo: %s (%s)", e.ItemCode, sn)
		}
		if incoming && sr.InStock() {
			return newError(ErrSerialNoDuplicate, "el número de serie %s no se puede recibir dos veces", sn)
		}
		if outgoing {
			if sr.Warehouse != e.Warehouse {
				return newError(ErrSerialNoWarehouse, "el número de serie %s no pertenece a la bodega %s", sn, e.Warehouse)
			}
			if entity.IsDeliveryVoucher(e.VoucherType) && sr.Status != entity.SerialNoStatusAvailable {
				return newError(ErrSerialNoStatus, "el número de serie debe estar 'Available' para entregarlo: %s", sn)
			}
		}
	}
	return nil
}
