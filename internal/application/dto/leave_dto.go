package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// CreateLeaveAllocationRequest body para POST /api/leave-allocations.
type CreateLeaveAllocationRequest struct {
	Employee           string          `json:"employee" validate:"required"`
	EmployeeName       string          `json:"employee_name"`
	LeaveType          string          `json:"leave_type" validate:"required"`
	FiscalYear         string          `json:"fiscal_year" validate:"required"`
	NewLeavesAllocated decimal.Decimal `json:"new_leaves_allocated" validate:"gte=0"`
	CarryForward       bool            `json:"carry_forward"`
}

// UpdateLeaveAllocationRequest body para PUT /api/leave-allocations/:id (después del envío).
type UpdateLeaveAllocationRequest struct {
	NewLeavesAllocated decimal.Decimal `json:"new_leaves_allocated" validate:"gte=0"`
}

// LeaveAllocationResponse asignación de permisos.
type LeaveAllocationResponse struct {
	ID                   string          `json:"id"`
	Employee             string          `json:"employee"`
	EmployeeName         string          `json:"employee_name"`
	LeaveType            string          `json:"leave_type"`
	FiscalYear           string          `json:"fiscal_year"`
	NewLeavesAllocated   decimal.Decimal `json:"new_leaves_allocated"`
	CarryForward         bool            `json:"carry_forward"`
	CarryForwardedLeaves decimal.Decimal `json:"carry_forwarded_leaves"`
	TotalLeavesAllocated decimal.Decimal `json:"total_leaves_allocated"`
	DocStatus            int             `json:"docstatus"`
}

// NewLeaveAllocationResponse mapea la entidad al DTO.
func NewLeaveAllocationResponse(a *entity.LeaveAllocation) LeaveAllocationResponse {
	return LeaveAllocationResponse{
		ID:                   a.ID,
		Employee:             a.Employee,
		EmployeeName:         a.EmployeeName,
		LeaveType:            a.LeaveType,
		FiscalYear:           a.FiscalYear,
		NewLeavesAllocated:   a.NewLeavesAllocated,
		CarryForward:         a.CarryForward,
		CarryForwardedLeaves: a.CarryForwardedLeaves,
		TotalLeavesAllocated: a.TotalLeavesAllocated,
		DocStatus:            a.DocStatus,
	}
}
