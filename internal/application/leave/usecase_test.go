package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appleave "github.com/jhoicas/Stock-ledger-api/internal/application/leave"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	domainleave "github.com/jhoicas/Stock-ledger-api/internal/domain/leave"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

type application struct {
	name                        string
	employee, leaveType, fiscal string
	days                        decimal.Decimal
}

type memLeave struct {
	allocations  map[string]*entity.LeaveAllocation
	applications []application
	types        map[string]*entity.LeaveType
	years        map[string]*entity.FiscalYear
}

func (m *memLeave) RunLeave(_ context.Context, fn func(r appleave.Repos) error) error {
	return fn(appleave.Repos{Allocations: m, Applications: apps{m}, LeaveTypes: m, FiscalYears: years{m}})
}

func (m *memLeave) GetByID(_ context.Context, id string) (*entity.LeaveAllocation, error) {
	a, ok := m.allocations[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memLeave) Create(_ context.Context, a *entity.LeaveAllocation) error {
	cp := *a
	m.allocations[a.ID] = &cp
	return nil
}

func (m *memLeave) Update(ctx context.Context, a *entity.LeaveAllocation) error { return m.Create(ctx, a) }

func (m *memLeave) FindSubmitted(_ context.Context, emp, lt, fy, exclude string) (string, error) {
	for _, a := range m.allocations {
		if a.Employee == emp && a.LeaveType == lt && a.FiscalYear == fy && a.DocStatus == entity.DocStatusSubmitted && a.ID != exclude {
			return a.ID, nil
		}
	}
	return "", nil
}

func (m *memLeave) SumAllocated(_ context.Context, emp, lt, fy, exclude string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, a := range m.allocations {
		if a.Employee == emp && a.LeaveType == lt && a.FiscalYear == fy && a.DocStatus == entity.DocStatusSubmitted && a.ID != exclude {
			sum = sum.Add(a.TotalLeavesAllocated)
		}
	}
	return sum, nil
}

func (m *memLeave) GetByName(_ context.Context, name string) (*entity.LeaveType, error) {
	return m.types[name], nil
}

type apps struct{ m *memLeave }

func (a apps) SumApplied(_ context.Context, emp, lt, fy string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, x := range a.m.applications {
		if x.employee == emp && x.leaveType == lt && x.fiscal == fy {
			sum = sum.Add(x.days)
		}
	}
	return sum, nil
}

func (a apps) FirstSubmitted(_ context.Context, emp, lt, fy string) (string, error) {
	for _, x := range a.m.applications {
		if x.employee == emp && x.leaveType == lt && x.fiscal == fy {
			return x.name, nil
		}
	}
	return "", nil
}

type years struct{ m *memLeave }

func (y years) GetByName(_ context.Context, name string) (*entity.FiscalYear, error) {
	return y.m.years[name], nil
}

func (y years) GetByStartDate(_ context.Context, start time.Time) (*entity.FiscalYear, error) {
	for _, fy := range y.m.years {
		if fy.YearStartDate.Equal(start) {
			return fy, nil
		}
	}
	return nil, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newMem() *memLeave {
	return &memLeave{
		allocations: map[string]*entity.LeaveAllocation{},
		types: map[string]*entity.LeaveType{
			"Vacaciones": {Name: "Vacaciones", IsCarryForward: true},
			"Enfermedad": {Name: "Enfermedad"},
		},
		years: map[string]*entity.FiscalYear{
			"2023": {Name: "2023", YearStartDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
			"2024": {Name: "2024", YearStartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestCreateYSubmit(t *testing.T) {
	m := newMem()
	uc := appleave.NewAllocationUseCase(m, logger.Nop())
	ctx := context.Background()

	a, err := uc.Create(ctx, appleave.CreateInput{Employee: "EMP-1", LeaveType: "Vacaciones", FiscalYear: "2024", NewLeavesAllocated: d("10")})
	require.NoError(t, err)
	assert.Equal(t, entity.DocStatusDraft, a.DocStatus)
	assert.True(t, d("10").Equal(a.TotalLeavesAllocated))

	a, err = uc.Submit(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DocStatusSubmitted, a.DocStatus)

	_, err = uc.Create(ctx, appleave.CreateInput{Employee: "EMP-1", LeaveType: "Vacaciones", FiscalYear: "2024", NewLeavesAllocated: d("2")})
	assert.ErrorIs(t, err, domainleave.ErrAlreadyAllocated)
}

func TestCreate_MedioDia(t *testing.T) {
	uc := appleave.NewAllocationUseCase(newMem(), logger.Nop())
	_, err := uc.Create(context.Background(), appleave.CreateInput{Employee: "EMP-1", LeaveType: "Vacaciones", FiscalYear: "2024", NewLeavesAllocated: d("3.2")})
	assert.ErrorIs(t, err, domainleave.ErrNotHalfDayMultiple)
}

func TestCreate_ArrastreDelAnioAnterior(t *testing.T) {
	m := newMem()
	m.allocations["PREV"] = &entity.LeaveAllocation{ID: "PREV", Employee: "EMP-1", LeaveType: "Vacaciones", FiscalYear: "2023",
		TotalLeavesAllocated: d("15"), DocStatus: entity.DocStatusSubmitted}
	m.applications = []application{{name: "LAP-1", employee: "EMP-1", leaveType: "Vacaciones", fiscal: "2023", days: d("12")}}
	uc := appleave.NewAllocationUseCase(m, logger.Nop())

	a, err := uc.Create(context.Background(), appleave.CreateInput{Employee: "EMP-1", LeaveType: "Vacaciones", FiscalYear: "2024",
		NewLeavesAllocated: d("10"), CarryForward: true})
	require.NoError(t, err)
	assert.True(t, d("3").Equal(a.CarryForwardedLeaves))
	assert.True(t, d("13").Equal(a.TotalLeavesAllocated))

	_, err = uc.Create(context.Background(), appleave.CreateInput{Employee: "EMP-1", LeaveType: "Enfermedad", FiscalYear: "2024",
		NewLeavesAllocated: d("5"), CarryForward: true})
	assert.ErrorIs(t, err, domainleave.ErrCarryForwardNotAllowed)
}

func TestUpdateAfterSubmitYCancel(t *testing.T) {
	m := newMem()
	uc := appleave.NewAllocationUseCase(m, logger.Nop())
	ctx := context.Background()

	a, err := uc.Create(ctx, appleave.CreateInput{Employee: "EMP-1", LeaveType: "Enfermedad", FiscalYear: "2024", NewLeavesAllocated: d("10")})
	require.NoError(t, err)
	_, err = uc.UpdateAfterSubmit(ctx, a.ID, d("8"))
	assert.ErrorIs(t, err, domain.ErrConflict, "solo se ajustan asignaciones enviadas")

	_, err = uc.Submit(ctx, a.ID)
	require.NoError(t, err)
	m.applications = []application{{name: "LAP-9", employee: "EMP-1", leaveType: "Enfermedad", fiscal: "2024", days: d("6")}}

	_, err = uc.UpdateAfterSubmit(ctx, a.ID, d("4"))
	assert.ErrorIs(t, err, domainleave.ErrBelowApplied)

	a, err = uc.UpdateAfterSubmit(ctx, a.ID, d("6.5"))
	require.NoError(t, err)
	assert.True(t, d("6.5").Equal(a.TotalLeavesAllocated))

	_, err = uc.Cancel(ctx, a.ID)
	assert.ErrorIs(t, err, domainleave.ErrLeaveApplicationExists)

	m.applications = nil
	a, err = uc.Cancel(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DocStatusCancelled, a.DocStatus)

	_, err = uc.Cancel(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
