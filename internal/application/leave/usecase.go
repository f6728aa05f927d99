package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	domainleave "github.com/jhoicas/Stock-ledger-api/internal/domain/leave"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Allocations  repository.LeaveAllocationRepository
	Applications repository.LeaveApplicationRepository
	LeaveTypes   repository.LeaveTypeRepository
	FiscalYears  repository.FiscalYearRepository
}

// TxRunner ejecuta fn dentro de una transacción con los repositorios de permisos.
type TxRunner interface {
	RunLeave(ctx context.Context, fn func(r Repos) error) error
}

// AllocationUseCase ciclo de vida de la asignación de permisos (borrador, envío, ajuste, cancelación).
type AllocationUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewAllocationUseCase construye el caso de uso.
func NewAllocationUseCase(tx TxRunner, log *logger.Logger) *AllocationUseCase {
	return &AllocationUseCase{tx: tx, log: log}
}

// CreateInput datos de una nueva asignación.
type CreateInput struct {
	Employee           string
	EmployeeName       string
	LeaveType          string
	FiscalYear         string
	NewLeavesAllocated decimal.Decimal
	CarryForward       bool
}

// Create valida y guarda la asignación en borrador con el saldo arrastrado del año anterior.
func (uc *AllocationUseCase) Create(ctx context.Context, in CreateInput) (*entity.LeaveAllocation, error) {
	if in.Employee == "" || in.LeaveType == "" || in.FiscalYear == "" || in.NewLeavesAllocated.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	a := &entity.LeaveAllocation{
		ID:                 uuid.New().String(),
		Employee:           in.Employee,
		EmployeeName:       in.EmployeeName,
		LeaveType:          in.LeaveType,
		FiscalYear:         in.FiscalYear,
		NewLeavesAllocated: in.NewLeavesAllocated,
		CarryForward:       in.CarryForward,
		DocStatus:          entity.DocStatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	err := uc.tx.RunLeave(ctx, func(r Repos) error {
		if err := carryForward(ctx, r, a); err != nil {
			return err
		}
		if err := validate(ctx, r, a); err != nil {
			return err
		}
		return r.Allocations.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Submit envía la asignación (docstatus 1) revalidando contra las demás asignaciones enviadas.
func (uc *AllocationUseCase) Submit(ctx context.Context, id string) (*entity.LeaveAllocation, error) {
	var a *entity.LeaveAllocation
	err := uc.tx.RunLeave(ctx, func(r Repos) error {
		var err error
		if a, err = load(ctx, r, id); err != nil {
			return err
		}
		if a.DocStatus != entity.DocStatusDraft {
			return domain.ErrConflict
		}
		if err := validate(ctx, r, a); err != nil {
			return err
		}
		a.DocStatus = entity.DocStatusSubmitted
		a.UpdatedAt = time.Now()
		return r.Allocations.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("allocation_id", a.ID).Str("employee", a.Employee).Str("leave_type", a.LeaveType).
		Str("total", a.TotalLeavesAllocated.String()).Msg("asignación de permisos enviada")
	return a, nil
}

// UpdateAfterSubmit ajusta los días nuevos de una asignación enviada.
func (uc *AllocationUseCase) UpdateAfterSubmit(ctx context.Context, id string, newLeaves decimal.Decimal) (*entity.LeaveAllocation, error) {
	if newLeaves.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var a *entity.LeaveAllocation
	err := uc.tx.RunLeave(ctx, func(r Repos) error {
		var err error
		if a, err = load(ctx, r, id); err != nil {
			return err
		}
		if a.DocStatus != entity.DocStatusSubmitted {
			return domain.ErrConflict
		}
		a.NewLeavesAllocated = newLeaves
		if err := domainleave.CheckHalfDayMultiple(a.NewLeavesAllocated); err != nil {
			return err
		}
		if err := checkApplied(ctx, r, a); err != nil {
			return err
		}
		a.UpdatedAt = time.Now()
		return r.Allocations.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Cancel cancela una asignación enviada si el empleado no tiene solicitudes enviadas del mismo tipo y año.
func (uc *AllocationUseCase) Cancel(ctx context.Context, id string) (*entity.LeaveAllocation, error) {
	var a *entity.LeaveAllocation
	err := uc.tx.RunLeave(ctx, func(r Repos) error {
		var err error
		if a, err = load(ctx, r, id); err != nil {
			return err
		}
		if a.DocStatus != entity.DocStatusSubmitted {
			return domain.ErrConflict
		}
		app, err := r.Applications.FirstSubmitted(ctx, a.Employee, a.LeaveType, a.FiscalYear)
		if err != nil {
			return fmt.Errorf("leave: solicitudes: %w", err)
		}
		if app != "" {
			return &domainleave.RuleError{
				Kind: domainleave.ErrLeaveApplicationExists,
				Message: fmt.Sprintf("no se puede cancelar: el empleado %s ya solicitó %s (solicitud %s)",
					a.Employee, a.LeaveType, app),
			}
		}
		a.DocStatus = entity.DocStatusCancelled
		a.UpdatedAt = time.Now()
		return r.Allocations.Update(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("allocation_id", a.ID).Msg("asignación de permisos cancelada")
	return a, nil
}

func load(ctx context.Context, r Repos, id string) (*entity.LeaveAllocation, error) {
	a, err := r.Allocations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leave: obtener asignación: %w", err)
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func validate(ctx context.Context, r Repos, a *entity.LeaveAllocation) error {
	if err := domainleave.CheckHalfDayMultiple(a.NewLeavesAllocated); err != nil {
		return err
	}
	existing, err := r.Allocations.FindSubmitted(ctx, a.Employee, a.LeaveType, a.FiscalYear, a.ID)
	if err != nil {
		return fmt.Errorf("leave: asignaciones existentes: %w", err)
	}
	if err := domainleave.CheckNotAllocated(existing, a.LeaveType, a.Employee, a.FiscalYear); err != nil {
		return err
	}
	return checkApplied(ctx, r, a)
}

func checkApplied(ctx context.Context, r Repos, a *entity.LeaveAllocation) error {
	a.TotalLeavesAllocated = domainleave.Total(a.CarryForwardedLeaves, a.NewLeavesAllocated)
	applied, err := r.Applications.SumApplied(ctx, a.Employee, a.LeaveType, a.FiscalYear)
	if err != nil {
		return fmt.Errorf("leave: días solicitados: %w", err)
	}
	return domainleave.CheckApplied(a.Employee, a.NewLeavesAllocated, a.TotalLeavesAllocated, applied)
}

// carryForward calcula el saldo arrastrado desde el año fiscal anterior (inicio un año antes).
func carryForward(ctx context.Context, r Repos, a *entity.LeaveAllocation) error {
	a.CarryForwardedLeaves = decimal.Zero
	if a.CarryForward {
		lt, err := r.LeaveTypes.GetByName(ctx, a.LeaveType)
		if err != nil {
			return fmt.Errorf("leave: tipo de permiso: %w", err)
		}
		if lt == nil {
			return domain.ErrNotFound
		}
		if !lt.IsCarryForward {
			a.CarryForward = false
			return &domainleave.RuleError{
				Kind:    domainleave.ErrCarryForwardNotAllowed,
				Message: fmt.Sprintf("el tipo de permiso %s no permite arrastre", a.LeaveType),
			}
		}
	}

	fy, err := r.FiscalYears.GetByName(ctx, a.FiscalYear)
	if err != nil {
		return fmt.Errorf("leave: año fiscal: %w", err)
	}
	if fy == nil {
		return domain.ErrNotFound
	}
	if a.CarryForward {
		prev, err := r.FiscalYears.GetByStartDate(ctx, fy.YearStartDate.AddDate(-1, 0, 0))
		if err != nil {
			return fmt.Errorf("leave: año fiscal anterior: %w", err)
		}
		if prev != nil {
			allocated, err := r.Allocations.SumAllocated(ctx, a.Employee, a.LeaveType, prev.Name, a.ID)
			if err != nil {
				return fmt.Errorf("leave: asignado año anterior: %w", err)
			}
			applied, err := r.Applications.SumApplied(ctx, a.Employee, a.LeaveType, prev.Name)
			if err != nil {
				return fmt.Errorf("leave: solicitado año anterior: %w", err)
			}
			a.CarryForwardedLeaves = domainleave.CarryForwardBalance(allocated, applied)
		}
	}
	a.TotalLeavesAllocated = domainleave.Total(a.CarryForwardedLeaves, a.NewLeavesAllocated)
	return nil
}
