package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
)

// SerialNoHandler maneja el maestro de números de serie (protegido).
type SerialNoHandler struct {
	uc   *serialno.SerialNoUseCase
	card *serialno.CardUseCase
}

// NewSerialNoHandler construye el handler.
func NewSerialNoHandler(uc *serialno.SerialNoUseCase, card *serialno.CardUseCase) *SerialNoHandler {
	return &SerialNoHandler{uc: uc, card: card}
}

// Register godoc
// @Summary      Dar de alta un número de serie sin movimiento
// @Tags         serial-nos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSerialNoRequest  true  "Número de serie"
// @Success      201   {object}  dto.SerialNoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/serial-nos [post]
func (h *SerialNoHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSerialNoRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	warranty, _ := dto.ParseDate(in.WarrantyExpiryDate)
	amc, _ := dto.ParseDate(in.AMCExpiryDate)
	company := in.Company
	if company == "" {
		company = GetCompanyID(c)
	}
	sr, err := h.uc.Register(c.Context(), serialno.RegisterInput{
		SerialNo:           in.SerialNo,
		ItemCode:           in.ItemCode,
		Company:            company,
		Warehouse:          in.Warehouse,
		WarrantyExpiryDate: warranty,
		AMCExpiryDate:      amc,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSerialNoResponse(sr))
}

// GetByID godoc
// @Summary      Obtener número de serie
// @Tags         serial-nos
// @Security     Bearer
// @Produce      json
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      200  {object}  dto.SerialNoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serial-nos/{serial_no} [get]
func (h *SerialNoHandler) GetByID(c *fiber.Ctx) error {
	sr, err := h.uc.GetByID(c.Context(), c.Params("serial_no"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSerialNoResponse(sr))
}

// Update godoc
// @Summary      Actualizar fechas de garantía y AMC
// @Tags         serial-nos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        serial_no  path  string                     true  "Número de serie"
// @Param        body       body  dto.UpdateSerialNoRequest  true  "Campos editables"
// @Success      200  {object}  dto.SerialNoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/serial-nos/{serial_no} [put]
func (h *SerialNoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSerialNoRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	warranty, _ := dto.ParseDate(in.WarrantyExpiryDate)
	amc, _ := dto.ParseDate(in.AMCExpiryDate)
	sr, err := h.uc.Update(c.Context(), c.Params("serial_no"), serialno.UpdateInput{
		ItemCode:           in.ItemCode,
		Warehouse:          in.Warehouse,
		WarrantyExpiryDate: warranty,
		AMCExpiryDate:      amc,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSerialNoResponse(sr))
}

// Delete godoc
// @Summary      Eliminar número de serie
// @Description  Solo si no está entregado ni asignado a una bodega.
// @Tags         serial-nos
// @Security     Bearer
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/serial-nos/{serial_no} [delete]
func (h *SerialNoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("serial_no")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Rename godoc
// @Summary      Renombrar número de serie
// @Description  Reescribe el nombre en el libro de stock y en las líneas de comprobantes. No se permite fusionar.
// @Tags         serial-nos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        serial_no  path  string                     true  "Número de serie actual"
// @Param        body       body  dto.RenameSerialNoRequest  true  "Nuevo nombre"
// @Success      200  {object}  dto.SerialNoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/serial-nos/{serial_no}/rename [post]
func (h *SerialNoHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameSerialNoRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	sr, err := h.uc.Rename(c.Context(), c.Params("serial_no"), in.NewSerialNo, in.Merge)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSerialNoResponse(sr))
}

// Resync godoc
// @Summary      Recalcular el estado del número de serie desde el libro de stock
// @Tags         serial-nos
// @Security     Bearer
// @Produce      json
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      200  {object}  dto.SerialNoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serial-nos/{serial_no}/resync [post]
func (h *SerialNoHandler) Resync(c *fiber.Ctx) error {
	sr, err := h.uc.Resync(c.Context(), c.Params("serial_no"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSerialNoResponse(sr))
}

// Card godoc
// @Summary      Descargar ficha PDF del número de serie
// @Tags         serial-nos
// @Security     Bearer
// @Produce      application/pdf
// @Param        serial_no  path  string  true  "Número de serie"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serial-nos/{serial_no}/card [get]
func (h *SerialNoHandler) Card(c *fiber.Ctx) error {
	pdf, filename, err := h.card.Download(c.Context(), c.Params("serial_no"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
