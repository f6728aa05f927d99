package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/Stock-ledger-api/internal/application/leave"
)

// LeaveHandler ciclo de vida de asignaciones de permisos (rol rrhh).
type LeaveHandler struct {
	uc *leave.AllocationUseCase
}

func NewLeaveHandler(uc *leave.AllocationUseCase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

// Create godoc
// @Summary      Crear asignación de permisos en borrador
// @Tags         leave
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeaveAllocationRequest  true  "Asignación"
// @Success      201   {object}  dto.LeaveAllocationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/leave-allocations [post]
func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeaveAllocationRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	a, err := h.uc.Create(c.Context(), leave.CreateInput{
		Employee:           in.Employee,
		EmployeeName:       in.EmployeeName,
		LeaveType:          in.LeaveType,
		FiscalYear:         in.FiscalYear,
		NewLeavesAllocated: in.NewLeavesAllocated,
		CarryForward:       in.CarryForward,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewLeaveAllocationResponse(a))
}

// Submit envía la asignación.
// POST /api/leave-allocations/:id/submit
func (h *LeaveHandler) Submit(c *fiber.Ctx) error {
	a, err := h.uc.Submit(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewLeaveAllocationResponse(a))
}

// Update ajusta los días de una asignación ya enviada.
// PUT /api/leave-allocations/:id
func (h *LeaveHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeaveAllocationRequest
	if !bindAndValidate(c, &in) {
		return nil
	}
	a, err := h.uc.UpdateAfterSubmit(c.Context(), c.Params("id"), in.NewLeavesAllocated)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewLeaveAllocationResponse(a))
}

// Cancel cancela la asignación.
// POST /api/leave-allocations/:id/cancel
func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	a, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewLeaveAllocationResponse(a))
}
