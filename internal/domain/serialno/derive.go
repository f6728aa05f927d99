package serialno

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// Movements movimientos relevantes de un número de serie extraídos de su historial.
type Movements struct {
	Last     *entity.StockLedgerEntry // define el estado
	Purchase *entity.StockLedgerEntry // entrada más reciente
	Delivery *entity.StockLedgerEntry // salida más reciente
}

// PickMovements parte el historial (ordenado del más reciente al más antiguo) en entradas
// y salidas del número de serie. El último movimiento es la entrada más reciente si hay
// más entradas que salidas; si no, la salida más reciente.
func PickMovements(serialNo string, history []*entity.StockLedgerEntry) Movements {
	var incoming, outgoing []*entity.StockLedgerEntry
	for _, e := range history {
		if e.IsCancelled || !Contains(e.SerialNos, serialNo) {
			continue
		}
		if e.IsIncoming() {
			incoming = append(incoming, e)
		} else {
			outgoing = append(outgoing, e)
		}
	}

	var m Movements
	if len(incoming) > 0 {
		m.Purchase = incoming[0]
	}
	if len(outgoing) > 0 {
		m.Delivery = outgoing[0]
	}
	if len(incoming)-len(outgoing) > 0 {
		m.Last = incoming[0]
	} else if len(outgoing) > 0 {
		m.Last = outgoing[0]
	}
	return m
}

// Provenance datos externos resueltos para los movimientos (comprobantes y terceros).
type Provenance struct {
	// LastDocumentType tipo de documento efectivo del último movimiento; para Stock Entry
	// es su propósito. Vacío = VoucherType del movimiento.
	LastDocumentType string
	Supplier         string
	SupplierName     string
	Customer         string
	CustomerName     string
}

// DeriveState calcula el estado completo del número de serie a partir de sus movimientos.
// No modifica current; devuelve un registro nuevo. Es idempotente para el mismo historial.
// La bodega no se deriva: la fija el movimiento que se aplica (ver PlanApply).
func DeriveState(current entity.SerialNo, m Movements, p Provenance, today time.Time) entity.SerialNo {
	next := current

	next.Status = deriveStatus(m.Last, p.LastDocumentType)

	if e := m.Purchase; e != nil {
		next.PurchaseDocumentType = e.VoucherType
		next.PurchaseDocumentNo = e.VoucherNo
		next.PurchaseDate = datePtr(e.PostingDate)
		next.PurchaseTime = e.PostingTime
		next.PurchaseRate = e.IncomingRate
		next.Supplier = p.Supplier
		next.SupplierName = p.SupplierName
	} else {
		next.PurchaseDocumentType = ""
		next.PurchaseDocumentNo = ""
		next.PurchaseDate = nil
		next.PurchaseTime = ""
		next.PurchaseRate = decimal.Zero
		next.Supplier = ""
		next.SupplierName = ""
	}

	if e := m.Delivery; e != nil {
		next.DeliveryDocumentType = e.VoucherType
		next.DeliveryDocumentNo = e.VoucherNo
		next.DeliveryDate = datePtr(e.PostingDate)
		next.DeliveryTime = e.PostingTime
		next.Customer = p.Customer
		next.CustomerName = p.CustomerName
		if next.WarrantyPeriod > 0 {
			next.WarrantyExpiryDate = datePtr(dateOnly(e.PostingDate).AddDate(0, 0, next.WarrantyPeriod))
		}
	} else {
		next.DeliveryDocumentType = ""
		next.DeliveryDocumentNo = ""
		next.DeliveryDate = nil
		next.DeliveryTime = ""
		next.Customer = ""
		next.CustomerName = ""
		next.WarrantyExpiryDate = nil
	}

	next.MaintenanceStatus = MaintenanceStatus(next.WarrantyExpiryDate, next.AMCExpiryDate, today)
	return next
}

// RebuildWarehouse reconstruye la bodega desde el historial cuando ya no hay un movimiento
// que la fije (cancelación de comprobantes): la del último movimiento si es entrada, si no vacía.
func RebuildWarehouse(m Movements) string {
	if m.Last != nil && m.Last.IsIncoming() {
		return m.Last.Warehouse
	}
	return ""
}

func deriveStatus(last *entity.StockLedgerEntry, documentType string) string {
	if last == nil {
		return entity.SerialNoStatusNotAvailable
	}
	if documentType == "" {
		documentType = last.VoucherType
	}
	if last.IsIncoming() {
		if documentType == entity.DocumentTypeSalesReturn {
			return entity.SerialNoStatusSalesReturned
		}
		return entity.SerialNoStatusAvailable
	}
	switch {
	case documentType == entity.DocumentTypePurchaseReturn:
		return entity.SerialNoStatusPurchaseReturned
	case entity.IsDeliveryVoucher(last.VoucherType):
		return entity.SerialNoStatusDelivered
	default:
		return entity.SerialNoStatusNotAvailable
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time {
	d := dateOnly(t)
	return &d
}
