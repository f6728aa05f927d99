package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/production"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidateStatus(t *testing.T) {
	assert.NoError(t, production.ValidateStatus(entity.ProductionStatusInProcess))
	assert.ErrorIs(t, production.ValidateStatus("Paused"), production.ErrInvalidStatus)
}

func TestCheckOverProduction(t *testing.T) {
	assert.NoError(t, production.CheckOverProduction("FG", "SO-1", d("4"), d("6"), d("10")))
	assert.ErrorIs(t, production.CheckOverProduction("FG", "SO-1", d("5"), d("6"), d("10")), production.ErrOverProduction)
}

func TestCheckWholeNumber(t *testing.T) {
	nos := &entity.UOM{Name: "Nos", MustBeWholeNumber: true}
	assert.NoError(t, production.CheckWholeNumber(nos, d("3"), d("0")))
	assert.ErrorIs(t, production.CheckWholeNumber(nos, d("2.5")), production.ErrUOMMustBeWhole)
	assert.NoError(t, production.CheckWholeNumber(&entity.UOM{Name: "Kg"}, d("2.5")))
}

func TestStatusAfter(t *testing.T) {
	cur := entity.ProductionStatusStopped
	assert.Equal(t, entity.ProductionStatusStopped,
		production.StatusAfter(entity.ProductionStatusInProcess, entity.ProductionStatusStopped, d("10"), d("3")))
	assert.Equal(t, entity.ProductionStatusSubmitted, production.StatusAfter(cur, "", d("10"), d("0")))
	assert.Equal(t, entity.ProductionStatusInProcess, production.StatusAfter(cur, "", d("10"), d("3")))
	assert.Equal(t, entity.ProductionStatusCompleted, production.StatusAfter(cur, "", d("10"), d("10")))
}

func TestPlannedQtyDelta(t *testing.T) {
	assert.True(t, d("-7").Equal(production.PlannedQtyDelta(entity.ProductionStatusStopped, d("10"), d("3"))))
	assert.True(t, d("7").Equal(production.PlannedQtyDelta("", d("10"), d("3"))))
}

func TestMakeStockEntry(t *testing.T) {
	o := &entity.ProductionOrder{ID: "PO-1", Company: "ACME", BOMNo: "BOM-1", Qty: d("10"), ProducedQty: d("4"),
		WIPWarehouse: "WIP", FGWarehouse: "FG"}

	se, err := production.MakeStockEntry(o, entity.StockEntryPurposeMaterialTransfer)
	require.NoError(t, err)
	assert.Equal(t, "WIP", se.ToWarehouse)
	assert.Empty(t, se.FromWarehouse)
	assert.True(t, d("6").Equal(se.FGCompletedQty))

	se, err = production.MakeStockEntry(o, entity.StockEntryPurposeManufacture)
	require.NoError(t, err)
	assert.Equal(t, "WIP", se.FromWarehouse)
	assert.Equal(t, "FG", se.ToWarehouse)

	_, err = production.MakeStockEntry(o, "Otro")
	assert.ErrorIs(t, err, production.ErrInvalidPurpose)
}
