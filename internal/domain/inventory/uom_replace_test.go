package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
)

func TestValidateUOMReplace(t *testing.T) {
	item := &entity.Item{Code: "WIDGET", StockUOM: "Nos"}
	nos := &entity.UOM{Name: "Nos", MustBeWholeNumber: true}
	box := &entity.UOM{Name: "Box", MustBeWholeNumber: true}
	kg := &entity.UOM{Name: "Kg"}

	req := inventory.UOMReplace{ItemCode: "WIDGET", CurrentStockUOM: "Nos", NewStockUOM: "Box", ConversionFactor: d("12")}
	assert.NoError(t, inventory.ValidateUOMReplace(req, item, nos, box))

	same := req
	same.NewStockUOM = "Nos"
	assert.ErrorIs(t, inventory.ValidateUOMReplace(same, item, nos, nos), inventory.ErrUOMUnchanged)

	zero := req
	zero.ConversionFactor = d("0")
	assert.ErrorIs(t, inventory.ValidateUOMReplace(zero, item, nos, box), inventory.ErrConversionFactor)

	already := req
	already.CurrentStockUOM = "Kg"
	assert.ErrorIs(t, inventory.ValidateUOMReplace(already, &entity.Item{StockUOM: "Box"}, kg, box),
		inventory.ErrItemAlreadyOnUOM)

	toKg := req
	toKg.NewStockUOM = "Kg"
	assert.ErrorIs(t, inventory.ValidateUOMReplace(toKg, item, nos, kg), inventory.ErrUOMWholeNumber)

	frac := req
	frac.ConversionFactor = d("2.5")
	assert.ErrorIs(t, inventory.ValidateUOMReplace(frac, item, nos, box), inventory.ErrFractionalFactor)
}

func TestScaleBin(t *testing.T) {
	b := &entity.Bin{ActualQty: d("24"), OrderedQty: d("2"), ReservedQty: d("1"), PlannedQty: d("3")}
	inventory.ScaleBin(b, "Box", d("12"))

	assert.Equal(t, "Box", b.StockUOM)
	assert.True(t, d("24").Equal(b.OrderedQty))
	assert.True(t, d("12").Equal(b.ReservedQty))
	assert.True(t, d("36").Equal(b.PlannedQty))
	assert.True(t, d("72").Equal(b.ProjectedQty), "24 + 24 + 0 + 36 - 12")
}
