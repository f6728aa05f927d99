package serialno_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

func TestCheckDelete(t *testing.T) {
	delivered := &entity.SerialNo{SerialNo: "SN-1", Status: entity.SerialNoStatusDelivered}
	assert.ErrorIs(t, serialno.CheckDelete(delivered), serialno.ErrSerialNoDelete)

	inStock := &entity.SerialNo{SerialNo: "SN-1", Status: entity.SerialNoStatusAvailable, Warehouse: "WH-A"}
	assert.ErrorIs(t, serialno.CheckDelete(inStock), serialno.ErrSerialNoDelete)

	free := &entity.SerialNo{SerialNo: "SN-1", Status: entity.SerialNoStatusNotAvailable}
	assert.NoError(t, serialno.CheckDelete(free))
}

func TestCheckRename(t *testing.T) {
	assert.ErrorIs(t, serialno.CheckRename(true), serialno.ErrSerialNoMerge)
	assert.NoError(t, serialno.CheckRename(false))
}

func TestCheckNewYCheckUpdate(t *testing.T) {
	assert.ErrorIs(t, serialno.CheckNew(&entity.SerialNo{Warehouse: "WH-A"}), serialno.ErrSerialNoCannotCreateDirect)
	assert.NoError(t, serialno.CheckNew(&entity.SerialNo{}))

	stored := &entity.SerialNo{ItemCode: "WIDGET", Warehouse: "WH-A"}
	assert.ErrorIs(t, serialno.CheckUpdate(stored, &entity.SerialNo{ItemCode: "GADGET", Warehouse: "WH-A"}, false),
		serialno.ErrSerialNoCannotChange)
	assert.ErrorIs(t, serialno.CheckUpdate(stored, &entity.SerialNo{ItemCode: "WIDGET"}, false),
		serialno.ErrSerialNoCannotChange)
	assert.NoError(t, serialno.CheckUpdate(stored, &entity.SerialNo{ItemCode: "WIDGET"}, true))
}
