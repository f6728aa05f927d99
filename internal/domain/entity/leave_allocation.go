package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveAllocation asignación de días de permiso a un empleado por tipo y año fiscal.
type LeaveAllocation struct {
	ID                   string
	Employee             string
	EmployeeName         string
	LeaveType            string
	FiscalYear           string
	NewLeavesAllocated   decimal.Decimal
	CarryForward         bool
	CarryForwardedLeaves decimal.Decimal
	TotalLeavesAllocated decimal.Decimal
	DocStatus            int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// LeaveType tipo de permiso.
type LeaveType struct {
	Name           string
	IsCarryForward bool
}

// FiscalYear año fiscal.
type FiscalYear struct {
	Name          string
	YearStartDate time.Time
}
