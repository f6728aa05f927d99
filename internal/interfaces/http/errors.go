package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/leave"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/naming"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/production"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

type errorMapping struct {
	kind   error
	status int
	code   string
}

// errorTable se recorre en orden; la primera clase que coincide con errors.Is gana.
// Los errores de regla devuelven su propio mensaje, pensado para el usuario.
var errorTable = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},

	{serialno.ErrSerialNoNotRequired, fiber.StatusUnprocessableEntity, "SERIAL_NO_NOT_REQUIRED"},
	{serialno.ErrSerialNoRequired, fiber.StatusUnprocessableEntity, "SERIAL_NO_REQUIRED"},
	{serialno.ErrSerialNoQty, fiber.StatusUnprocessableEntity, "SERIAL_NO_QTY"},
	{serialno.ErrSerialNoDuplicate, fiber.StatusUnprocessableEntity, "SERIAL_NO_DUPLICATE"},
	{serialno.ErrSerialNoItem, fiber.StatusUnprocessableEntity, "SERIAL_NO_ITEM"},
	{serialno.ErrSerialNoWarehouse, fiber.StatusUnprocessableEntity, "SERIAL_NO_WAREHOUSE"},
	{serialno.ErrSerialNoStatus, fiber.StatusUnprocessableEntity, "SERIAL_NO_STATUS"},
	{serialno.ErrSerialNoNotExists, fiber.StatusUnprocessableEntity, "SERIAL_NO_NOT_EXISTS"},
	{serialno.ErrSerialNoMerge, fiber.StatusUnprocessableEntity, "SERIAL_NO_MERGE"},
	{serialno.ErrSerialNoDelete, fiber.StatusConflict, "SERIAL_NO_DELETE"},
	{serialno.ErrSerialNoCannotCreateDirect, fiber.StatusUnprocessableEntity, "SERIAL_NO_CANNOT_CREATE_DIRECT"},
	{serialno.ErrSerialNoCannotChange, fiber.StatusUnprocessableEntity, "SERIAL_NO_CANNOT_CHANGE"},
	{serialno.ErrItemNotSerialized, fiber.StatusUnprocessableEntity, "ITEM_NOT_SERIALIZED"},
	{naming.ErrInvalidSeries, fiber.StatusUnprocessableEntity, "INVALID_SERIES"},

	{inventory.ErrUOMUnchanged, fiber.StatusUnprocessableEntity, "UOM_UNCHANGED"},
	{inventory.ErrConversionFactor, fiber.StatusUnprocessableEntity, "CONVERSION_FACTOR"},
	{inventory.ErrItemAlreadyOnUOM, fiber.StatusUnprocessableEntity, "ITEM_ALREADY_ON_UOM"},
	{inventory.ErrUOMWholeNumber, fiber.StatusUnprocessableEntity, "UOM_WHOLE_NUMBER"},
	{inventory.ErrFractionalFactor, fiber.StatusUnprocessableEntity, "FRACTIONAL_FACTOR"},

	{leave.ErrNotHalfDayMultiple, fiber.StatusUnprocessableEntity, "NOT_HALF_DAY_MULTIPLE"},
	{leave.ErrAlreadyAllocated, fiber.StatusConflict, "ALREADY_ALLOCATED"},
	{leave.ErrBelowApplied, fiber.StatusUnprocessableEntity, "BELOW_APPLIED"},
	{leave.ErrCarryForwardNotAllowed, fiber.StatusUnprocessableEntity, "CARRY_FORWARD_NOT_ALLOWED"},
	{leave.ErrLeaveApplicationExists, fiber.StatusConflict, "LEAVE_APPLICATION_EXISTS"},

	{production.ErrInvalidStatus, fiber.StatusConflict, "INVALID_STATUS"},
	{production.ErrIncorrectBOM, fiber.StatusUnprocessableEntity, "INCORRECT_BOM"},
	{production.ErrInvalidSalesOrder, fiber.StatusUnprocessableEntity, "INVALID_SALES_ORDER"},
	{production.ErrOverProduction, fiber.StatusUnprocessableEntity, "OVER_PRODUCTION"},
	{production.ErrWarehouseCompany, fiber.StatusUnprocessableEntity, "WAREHOUSE_COMPANY"},
	{production.ErrWIPWarehouseRequired, fiber.StatusUnprocessableEntity, "WIP_WAREHOUSE_REQUIRED"},
	{production.ErrStockEntryExists, fiber.StatusConflict, "STOCK_ENTRY_EXISTS"},
	{production.ErrUOMMustBeWhole, fiber.StatusUnprocessableEntity, "UOM_MUST_BE_WHOLE"},
	{production.ErrInvalidPurpose, fiber.StatusUnprocessableEntity, "INVALID_PURPOSE"},
}

// respondError traduce un error de caso de uso a la respuesta HTTP.
func respondError(c *fiber.Ctx, err error) error {
	for _, m := range errorTable {
		if errors.Is(err, m.kind) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
