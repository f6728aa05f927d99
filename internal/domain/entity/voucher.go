package entity

// Estados de documento (docstatus).
const (
	DocStatusDraft     = 0
	DocStatusSubmitted = 1
	DocStatusCancelled = 2
)

// Voucher es la cabecera del documento de origen de un movimiento
// (Purchase Receipt, Delivery Note, Stock Entry, ...).
type Voucher struct {
	VoucherType     string
	VoucherNo       string
	Company         string
	Purpose         string // solo Stock Entry
	Party           string // proveedor o cliente
	PartyName       string
	ProductionOrder string
	DocStatus       int
}

// VoucherItem es una línea de detalle del comprobante que guarda sus números de serie.
type VoucherItem struct {
	ID          string
	VoucherType string
	VoucherNo   string
	ItemCode    string
	SerialNos   []string
}
