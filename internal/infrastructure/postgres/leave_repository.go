package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var (
	_ repository.LeaveAllocationRepository  = (*LeaveAllocationRepo)(nil)
	_ repository.LeaveApplicationRepository = (*LeaveApplicationRepo)(nil)
	_ repository.LeaveTypeRepository        = (*LeaveTypeRepo)(nil)
	_ repository.FiscalYearRepository       = (*FiscalYearRepo)(nil)
)

// LeaveAllocationRepo asignaciones de permisos sobre PostgreSQL.
type LeaveAllocationRepo struct {
	q Querier
}

func NewLeaveAllocationRepository(q Querier) *LeaveAllocationRepo {
	return &LeaveAllocationRepo{q: q}
}

// GetByID obtiene una asignación; nil, nil si no existe.
func (r *LeaveAllocationRepo) GetByID(ctx context.Context, id string) (*entity.LeaveAllocation, error) {
	query := `
		SELECT id, employee, employee_name, leave_type, fiscal_year, new_leaves_allocated,
			carry_forward, carry_forwarded_leaves, total_leaves_allocated, docstatus, created_at, updated_at
		FROM leave_allocations WHERE id = $1`
	var a entity.LeaveAllocation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Employee, &a.EmployeeName, &a.LeaveType, &a.FiscalYear, &a.NewLeavesAllocated,
		&a.CarryForward, &a.CarryForwardedLeaves, &a.TotalLeavesAllocated, &a.DocStatus, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave allocation: %w", err)
	}
	return &a, nil
}

// Create persiste una asignación nueva.
func (r *LeaveAllocationRepo) Create(ctx context.Context, a *entity.LeaveAllocation) error {
	query := `
		INSERT INTO leave_allocations (id, employee, employee_name, leave_type, fiscal_year,
			new_leaves_allocated, carry_forward, carry_forwarded_leaves, total_leaves_allocated,
			docstatus, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Employee, a.EmployeeName, a.LeaveType, a.FiscalYear,
		a.NewLeavesAllocated, a.CarryForward, a.CarryForwardedLeaves, a.TotalLeavesAllocated, a.DocStatus,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert leave allocation: %w", err)
	}
	return nil
}

// Update guarda cantidades y estado de la asignación.
func (r *LeaveAllocationRepo) Update(ctx context.Context, a *entity.LeaveAllocation) error {
	query := `
		UPDATE leave_allocations SET new_leaves_allocated = $2, carry_forward = $3,
			carry_forwarded_leaves = $4, total_leaves_allocated = $5, docstatus = $6, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		a.ID, a.NewLeavesAllocated, a.CarryForward, a.CarryForwardedLeaves, a.TotalLeavesAllocated, a.DocStatus,
	)
	if err != nil {
		return fmt.Errorf("update leave allocation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindSubmitted busca otra asignación enviada para el mismo empleado, tipo y año.
func (r *LeaveAllocationRepo) FindSubmitted(ctx context.Context, employee, leaveType, fiscalYear, excludeID string) (string, error) {
	var id string
	err := r.q.QueryRow(ctx, `
		SELECT id FROM leave_allocations
		WHERE employee = $1 AND leave_type = $2 AND fiscal_year = $3 AND docstatus = $4 AND id <> $5
		ORDER BY created_at LIMIT 1`,
		employee, leaveType, fiscalYear, entity.DocStatusSubmitted, excludeID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find submitted leave allocation: %w", err)
	}
	return id, nil
}

// SumAllocated suma los días asignados en asignaciones enviadas.
func (r *LeaveAllocationRepo) SumAllocated(ctx context.Context, employee, leaveType, fiscalYear, excludeID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_leaves_allocated), 0) FROM leave_allocations
		WHERE employee = $1 AND leave_type = $2 AND fiscal_year = $3 AND docstatus = $4 AND id <> $5`,
		employee, leaveType, fiscalYear, entity.DocStatusSubmitted, excludeID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum leave allocated: %w", err)
	}
	return total, nil
}

// LeaveApplicationRepo lectura de solicitudes de permiso.
type LeaveApplicationRepo struct {
	q Querier
}

func NewLeaveApplicationRepository(q Querier) *LeaveApplicationRepo {
	return &LeaveApplicationRepo{q: q}
}

// SumApplied suma los días solicitados en solicitudes enviadas.
func (r *LeaveApplicationRepo) SumApplied(ctx context.Context, employee, leaveType, fiscalYear string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_leave_days), 0) FROM leave_applications
		WHERE employee = $1 AND leave_type = $2 AND fiscal_year = $3 AND docstatus = $4`,
		employee, leaveType, fiscalYear, entity.DocStatusSubmitted).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum leave applied: %w", err)
	}
	return total, nil
}

// FirstSubmitted devuelve la primera solicitud enviada ("" si no hay).
func (r *LeaveApplicationRepo) FirstSubmitted(ctx context.Context, employee, leaveType, fiscalYear string) (string, error) {
	var name string
	err := r.q.QueryRow(ctx, `
		SELECT name FROM leave_applications
		WHERE employee = $1 AND leave_type = $2 AND fiscal_year = $3 AND docstatus = $4
		ORDER BY name LIMIT 1`,
		employee, leaveType, fiscalYear, entity.DocStatusSubmitted).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("first submitted leave application: %w", err)
	}
	return name, nil
}

// LeaveTypeRepo lectura de tipos de permiso.
type LeaveTypeRepo struct {
	q Querier
}

func NewLeaveTypeRepository(q Querier) *LeaveTypeRepo {
	return &LeaveTypeRepo{q: q}
}

func (r *LeaveTypeRepo) GetByName(ctx context.Context, name string) (*entity.LeaveType, error) {
	var t entity.LeaveType
	err := r.q.QueryRow(ctx, `SELECT name, is_carry_forward FROM leave_types WHERE name = $1`, name).
		Scan(&t.Name, &t.IsCarryForward)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave type: %w", err)
	}
	return &t, nil
}

// FiscalYearRepo lectura de años fiscales.
type FiscalYearRepo struct {
	q Querier
}

func NewFiscalYearRepository(q Querier) *FiscalYearRepo {
	return &FiscalYearRepo{q: q}
}

func (r *FiscalYearRepo) GetByName(ctx context.Context, name string) (*entity.FiscalYear, error) {
	return r.get(ctx, `SELECT name, year_start_date FROM fiscal_years WHERE name = $1`, name)
}

// GetByStartDate busca el año fiscal que comienza en la fecha dada.
func (r *FiscalYearRepo) GetByStartDate(ctx context.Context, start time.Time) (*entity.FiscalYear, error) {
	return r.get(ctx, `SELECT name, year_start_date FROM fiscal_years WHERE year_start_date = $1`, start)
}

func (r *FiscalYearRepo) get(ctx context.Context, query string, arg any) (*entity.FiscalYear, error) {
	var fy entity.FiscalYear
	err := r.q.QueryRow(ctx, query, arg).Scan(&fy.Name, &fy.YearStartDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fiscal year: %w", err)
	}
	return &fy, nil
}
