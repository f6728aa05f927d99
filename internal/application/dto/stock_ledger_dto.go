package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// StockLedgerEntryRequest body para POST /api/stock-ledger/entries.
// serial_nos acepta series separadas por salto de línea o coma; vacío con autonumeración genera series.
type StockLedgerEntryRequest struct {
	ItemCode        string          `json:"item_code" validate:"required"`
	Warehouse       string          `json:"warehouse" validate:"required"`
	Company         string          `json:"company"`
	PostingDate     string          `json:"posting_date" validate:"required,datetime=2006-01-02"`
	PostingTime     string          `json:"posting_time" validate:"omitempty,datetime=15:04:05"`
	VoucherType     string          `json:"voucher_type" validate:"required"`
	VoucherNo       string          `json:"voucher_no" validate:"required"`
	VoucherDetailNo string          `json:"voucher_detail_no"`
	ActualQty       decimal.Decimal `json:"actual_qty"`
	IncomingRate    decimal.Decimal `json:"incoming_rate" validate:"gte=0"`
	SerialNos       string          `json:"serial_nos"`
}

// StockLedgerEntryResponse movimiento registrado.
type StockLedgerEntryResponse struct {
	ID                  string          `json:"id"`
	ItemCode            string          `json:"item_code"`
	Warehouse           string          `json:"warehouse"`
	PostingDate         string          `json:"posting_date"`
	PostingTime         string          `json:"posting_time"`
	VoucherType         string          `json:"voucher_type"`
	VoucherNo           string          `json:"voucher_no"`
	ActualQty           decimal.Decimal `json:"actual_qty"`
	QtyAfterTransaction decimal.Decimal `json:"qty_after_transaction"`
	ValuationRate       decimal.Decimal `json:"valuation_rate"`
	StockUOM            string          `json:"stock_uom"`
	SerialNos           []string        `json:"serial_nos"`
}

// NewStockLedgerEntryResponse mapea la entidad al DTO.
func NewStockLedgerEntryResponse(e *entity.StockLedgerEntry) StockLedgerEntryResponse {
	serials := e.SerialNos
	if serials == nil {
		serials = []string{}
	}
	return StockLedgerEntryResponse{
		ID:                  e.ID,
		ItemCode:            e.ItemCode,
		Warehouse:           e.Warehouse,
		PostingDate:         e.PostingDate.Format(DateLayout),
		PostingTime:         e.PostingTime,
		VoucherType:         e.VoucherType,
		VoucherNo:           e.VoucherNo,
		ActualQty:           e.ActualQty,
		QtyAfterTransaction: e.QtyAfterTransaction,
		ValuationRate:       e.ValuationRate,
		StockUOM:            e.StockUOM,
		SerialNos:           serials,
	}
}

// VoucherActionResponse resultado de cancelar o sincronizar un comprobante.
type VoucherActionResponse struct {
	VoucherType string `json:"voucher_type"`
	VoucherNo   string `json:"voucher_no"`
	Affected    int    `json:"affected"`
}

// VoucherRequest identifica un comprobante (POST /api/vouchers/cancel y /sync-serials).
type VoucherRequest struct {
	VoucherType string `json:"voucher_type" validate:"required"`
	VoucherNo   string `json:"voucher_no" validate:"required"`
}
