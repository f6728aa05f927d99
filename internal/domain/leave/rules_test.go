package leave_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/leave"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCheckHalfDayMultiple(t *testing.T) {
	assert.NoError(t, leave.CheckHalfDayMultiple(d("10")))
	assert.NoError(t, leave.CheckHalfDayMultiple(d("7.5")))

	err := leave.CheckHalfDayMultiple(d("7.3"))
	assert.ErrorIs(t, err, leave.ErrNotHalfDayMultiple)
	assert.Contains(t, err.Error(), "7.5 o 8")
}

func TestCheckApplied(t *testing.T) {
	assert.NoError(t, leave.CheckApplied("EMP-1", d("5"), d("8"), d("8")))

	err := leave.CheckApplied("EMP-1", d("5"), d("8"), d("10"))
	assert.ErrorIs(t, err, leave.ErrBelowApplied)
	assert.Contains(t, err.Error(), "al menos 7")
}

func TestCheckNotAllocated(t *testing.T) {
	assert.NoError(t, leave.CheckNotAllocated("", "Vacaciones", "EMP-1", "2024"))
	assert.ErrorIs(t, leave.CheckNotAllocated("LAL-1", "Vacaciones", "EMP-1", "2024"), leave.ErrAlreadyAllocated)
}

func TestTotalYCarryForward(t *testing.T) {
	assert.True(t, d("12").Equal(leave.Total(d("2"), d("10"))))
	assert.True(t, d("3").Equal(leave.CarryForwardBalance(d("15"), d("12"))))
}
