package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/production"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// ProductionHandler órdenes de producción (protegido).
type ProductionHandler struct {
	uc *production.OrderUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.OrderUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de producción en borrador
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionOrderRequest  true  "Orden"
// @Success      201   {object}  dto.ProductionOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/production-orders [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionOrderRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	expected, _ := dto.ParseDate(in.ExpectedDeliveryDate)
	o, err := h.uc.Create(c.Context(), production.CreateInput{
		Company:              in.Company,
		ProductionItem:       in.ProductionItem,
		BOMNo:                in.BOMNo,
		UseMultiLevelBOM:     in.UseMultiLevelBOM,
		Qty:                  in.Qty,
		SalesOrder:           in.SalesOrder,
		ExpectedDeliveryDate: expected,
		FGWarehouse:          in.FGWarehouse,
		WIPWarehouse:         in.WIPWarehouse,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductionOrderResponse(o))
}

// Submit POST /api/production-orders/:id/submit
func (h *ProductionHandler) Submit(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Submit)
}

// Cancel POST /api/production-orders/:id/cancel
func (h *ProductionHandler) Cancel(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Cancel)
}

// Stop POST /api/production-orders/:id/stop
func (h *ProductionHandler) Stop(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Stop)
}

// Unstop POST /api/production-orders/:id/unstop
func (h *ProductionHandler) Unstop(c *fiber.Ctx) error {
	return h.transition(c, h.uc.Unstop)
}

func (h *ProductionHandler) transition(c *fiber.Ctx, fn func(ctx context.Context, id string) (*entity.ProductionOrder, error)) error {
	o, err := fn(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewProductionOrderResponse(o))
}

// MakeStockEntry godoc
// @Summary      Generar borrador de Stock Entry desde la orden
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la orden"
// @Param        body  body  dto.MakeStockEntryRequest  true  "Propósito"
// @Success      200   {object}  dto.StockEntryDraftResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/production-orders/{id}/stock-entry [post]
func (h *ProductionHandler) MakeStockEntry(c *fiber.Ctx) error {
	var in dto.MakeStockEntryRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	d, err := h.uc.MakeStockEntry(c.Context(), c.Params("id"), in.Purpose)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockEntryDraftResponse{
		Purpose:          d.Purpose,
		ProductionOrder:  d.ProductionOrder,
		Company:          d.Company,
		BOMNo:            d.BOMNo,
		UseMultiLevelBOM: d.UseMultiLevelBOM,
		FGCompletedQty:   d.FGCompletedQty,
		FromWarehouse:    d.FromWarehouse,
		ToWarehouse:      d.ToWarehouse,
	})
}

// ItemDetails GET /api/production-orders/item-details/:code
func (h *ProductionHandler) ItemDetails(c *fiber.Ctx) error {
	d, err := h.uc.ItemDetails(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ProductionItemDetailsResponse{StockUOM: d.StockUOM, Description: d.Description, BOMNo: d.BOMNo})
}
