package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
)

// StockLedgerHandler maneja el registro de movimientos y las acciones sobre comprobantes (protegido).
type StockLedgerHandler struct {
	uc *serialno.LedgerUseCase
}

// NewStockLedgerHandler construye el handler.
func NewStockLedgerHandler(uc *serialno.LedgerUseCase) *StockLedgerHandler {
	return &StockLedgerHandler{uc: uc}
}

// CreateEntry godoc
// @Summary      Registrar movimiento en el libro de stock
// @Description  Valida los números de serie, autogenera series si el artículo tiene patrón,
//
//	actualiza el bin y sincroniza cada número de serie afectado.
//
// @Tags         stock-ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockLedgerEntryRequest  true  "Movimiento"
// @Success      201   {object}  dto.StockLedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock-ledger/entries [post]
func (h *StockLedgerHandler) CreateEntry(c *fiber.Ctx) error {
	var in dto.StockLedgerEntryRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	postingDate, err := time.Parse(dto.DateLayout, in.PostingDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "posting_date inválida"})
	}
	company := in.Company
	if company == "" {
		company = GetCompanyID(c)
	}
	e, err := h.uc.ProcessEntry(c.Context(), serialno.EntryInput{
		ItemCode:        in.ItemCode,
		Warehouse:       in.Warehouse,
		Company:         company,
		PostingDate:     postingDate,
		PostingTime:     in.PostingTime,
		VoucherType:     in.VoucherType,
		VoucherNo:       in.VoucherNo,
		VoucherDetailNo: in.VoucherDetailNo,
		ActualQty:       in.ActualQty,
		IncomingRate:    in.IncomingRate,
		SerialNos:       in.SerialNos,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewStockLedgerEntryResponse(e))
}

// CancelVoucher godoc
// @Summary      Cancelar los movimientos de un comprobante
// @Tags         stock-ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoucherRequest  true  "voucher_type, voucher_no"
// @Success      200   {object}  dto.VoucherActionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vouchers/cancel [post]
func (h *StockLedgerHandler) CancelVoucher(c *fiber.Ctx) error {
	var in dto.VoucherRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	n, err := h.uc.CancelVoucher(c.Context(), in.VoucherType, in.VoucherNo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.VoucherActionResponse{VoucherType: in.VoucherType, VoucherNo: in.VoucherNo, Affected: n})
}

// SyncVoucherSerials godoc
// @Summary      Sincronizar las series de las líneas del comprobante con el libro de stock
// @Tags         stock-ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoucherRequest  true  "voucher_type, voucher_no"
// @Success      200   {object}  dto.VoucherActionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vouchers/sync-serials [post]
func (h *StockLedgerHandler) SyncVoucherSerials(c *fiber.Ctx) error {
	var in dto.VoucherRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	n, err := h.uc.SyncVoucherSerials(c.Context(), in.VoucherType, in.VoucherNo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.VoucherActionResponse{VoucherType: in.VoucherType, VoucherNo: in.VoucherNo, Affected: n})
}
