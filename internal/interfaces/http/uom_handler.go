package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/uom"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
)

// UOMHandler cambio de unidad de stock de un artículo (rol admin).
type UOMHandler struct {
	uc *uom.ReplaceUseCase
}

func NewUOMHandler(uc *uom.ReplaceUseCase) *UOMHandler {
	return &UOMHandler{uc: uc}
}

// Replace godoc
// @Summary      Reemplazar la unidad de stock de un artículo
// @Description  Convierte los movimientos y bins existentes con el factor y recalcula la valoración.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string                      true  "Código del artículo"
// @Param        body  body  dto.ReplaceStockUOMRequest  true  "Nueva UOM y factor"
// @Success      200   {object}  dto.ReplaceStockUOMResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/items/{code}/stock-uom [post]
func (h *UOMHandler) Replace(c *fiber.Ctx) error {
	var in dto.ReplaceStockUOMRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	code := c.Params("code")
	current, err := h.uc.CurrentStockUOM(c.Context(), code)
	if err != nil {
		return respondError(c, err)
	}
	res, err := h.uc.Replace(c.Context(), inventory.UOMReplace{
		ItemCode:         code,
		CurrentStockUOM:  current,
		NewStockUOM:      in.NewStockUOM,
		ConversionFactor: in.ConversionFactor,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ReplaceStockUOMResponse{
		ItemCode:           res.ItemCode,
		PreviousStockUOM:   current,
		NewStockUOM:        res.NewStockUOM,
		LedgerEntries:      res.LedgerEntries,
		BinsUpdated:        res.BinsUpdated,
		WarehousesReposted: res.WarehousesReposted,
	})
}
