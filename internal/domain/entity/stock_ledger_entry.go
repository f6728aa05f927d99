package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de comprobante (voucher) que generan movimientos en el libro de stock.
const (
	VoucherTypePurchaseReceipt     = "Purchase Receipt"
	VoucherTypeDeliveryNote        = "Delivery Note"
	VoucherTypeSalesInvoice        = "Sales Invoice"
	VoucherTypeStockEntry          = "Stock Entry"
	VoucherTypeStockReconciliation = "Stock Reconciliation"
)

// Tipos de documento de devolución (propósito de un Stock Entry).
const (
	DocumentTypeSalesReturn    = "Sales Return"
	DocumentTypePurchaseReturn = "Purchase Return"
)

// IsDeliveryVoucher indica si el comprobante entrega mercancía al cliente.
func IsDeliveryVoucher(voucherType string) bool {
	return voucherType == VoucherTypeDeliveryNote || voucherType == VoucherTypeSalesInvoice
}

// StockLedgerEntry representa un movimiento inmutable del libro de stock.
// ActualQty positivo = entrada, negativo = salida.
type StockLedgerEntry struct {
	ID                  string
	ItemCode            string
	Warehouse           string
	Company             string
	PostingDate         time.Time
	PostingTime         string // HH:MM:SS
	VoucherType         string
	VoucherNo           string
	VoucherDetailNo     string
	ActualQty           decimal.Decimal
	IncomingRate        decimal.Decimal
	QtyAfterTransaction decimal.Decimal
	ValuationRate       decimal.Decimal
	StockUOM            string
	SerialNos           []string // en BD se guarda como texto separado por saltos de línea
	IsCancelled         bool
	CreatedAt           time.Time
}

// IsIncoming indica si el movimiento es una entrada.
func (e *StockLedgerEntry) IsIncoming() bool {
	return e.ActualQty.IsPositive()
}
