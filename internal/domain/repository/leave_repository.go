package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// LeaveAllocationRepository define el puerto de persistencia para asignaciones de permisos.
type LeaveAllocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.LeaveAllocation, error)
	Create(ctx context.Context, a *entity.LeaveAllocation) error
	Update(ctx context.Context, a *entity.LeaveAllocation) error
	// FindSubmitted devuelve el ID de otra asignación enviada para el mismo empleado/tipo/año ("" si no hay).
	FindSubmitted(ctx context.Context, employee, leaveType, fiscalYear, excludeID string) (string, error)
	// SumAllocated suma total_leaves_allocated de las asignaciones enviadas, excluyendo excludeID.
	SumAllocated(ctx context.Context, employee, leaveType, fiscalYear, excludeID string) (decimal.Decimal, error)
}

// LeaveApplicationRepository define el puerto de lectura de solicitudes de permiso enviadas.
type LeaveApplicationRepository interface {
	SumApplied(ctx context.Context, employee, leaveType, fiscalYear string) (decimal.Decimal, error)
	FirstSubmitted(ctx context.Context, employee, leaveType, fiscalYear string) (string, error)
}

// LeaveTypeRepository define el puerto de lectura de tipos de permiso.
type LeaveTypeRepository interface {
	GetByName(ctx context.Context, name string) (*entity.LeaveType, error)
}

// FiscalYearRepository define el puerto de lectura de años fiscales.
type FiscalYearRepository interface {
	GetByName(ctx context.Context, name string) (*entity.FiscalYear, error)
	GetByStartDate(ctx context.Context, start time.Time) (*entity.FiscalYear, error)
}
