package serialno_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

func TestPlanApply_Entrada(t *testing.T) {
	e := entry(2, entity.VoucherTypePurchaseReceipt, "WH-A", "SN-0001", "SN-0002")
	registered := map[string]*entity.SerialNo{"SN-0001": {SerialNo: "SN-0001"}}

	steps := serialno.PlanApply(e, registered)

	assert.Equal(t, []serialno.Step{
		{SerialNo: "SN-0001", Action: serialno.ActionUpdateWarehouse, Warehouse: "WH-A"},
		{SerialNo: "SN-0002", Action: serialno.ActionCreate, Warehouse: "WH-A"},
	}, steps)
}

func TestPlanApply_SalidaDejaSinBodega(t *testing.T) {
	e := entry(-1, entity.VoucherTypeDeliveryNote, "WH-A", "SN-0001", "SN-0404")
	registered := map[string]*entity.SerialNo{"SN-0001": {SerialNo: "SN-0001", Warehouse: "WH-A"}}

	steps := serialno.PlanApply(e, registered)

	// las salidas nunca crean series
	assert.Equal(t, []serialno.Step{
		{SerialNo: "SN-0001", Action: serialno.ActionUpdateWarehouse, Warehouse: ""},
	}, steps)
}

func TestNeedsGeneration(t *testing.T) {
	item := serializedItem()

	assert.True(t, serialno.NeedsGeneration(entry(2, entity.VoucherTypePurchaseReceipt, "WH-A"), item))
	assert.False(t, serialno.NeedsGeneration(entry(-2, entity.VoucherTypeDeliveryNote, "WH-A"), item))
	assert.False(t, serialno.NeedsGeneration(entry(1, entity.VoucherTypePurchaseReceipt, "WH-A", "SN-9"), item))

	noSeries := serializedItem()
	noSeries.SerialNoSeries = ""
	assert.False(t, serialno.NeedsGeneration(entry(2, entity.VoucherTypePurchaseReceipt, "WH-A"), noSeries))

	cancelled := entry(2, entity.VoucherTypePurchaseReceipt, "WH-A")
	cancelled.IsCancelled = true
	assert.False(t, serialno.NeedsGeneration(cancelled, item))
}

func TestGenerationCount(t *testing.T) {
	e := entry(0, entity.VoucherTypePurchaseReceipt, "WH-A")
	e.ActualQty = decimal.RequireFromString("3")
	assert.Equal(t, 3, serialno.GenerationCount(e))
}
