package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno/serialnotest"
	"github.com/jhoicas/Stock-ledger-api/internal/application/stock"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

func entry(id, wh string, qty, rate int64, cancelled bool) *entity.StockLedgerEntry {
	return &entity.StockLedgerEntry{
		ID: id, ItemCode: "TORNILLO", Warehouse: wh,
		PostingDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ActualQty:    decimal.NewFromInt(qty),
		IncomingRate: decimal.NewFromInt(rate),
		IsCancelled:  cancelled,
	}
}

func TestRepostItemWarehouse(t *testing.T) {
	s := serialnotest.NewStore()
	s.Ledger = []*entity.StockLedgerEntry{
		entry("1", "WH-A", 10, 10, false),
		entry("2", "WH-A", 10, 20, false),
		entry("3", "WH-A", 100, 99, true),
		entry("4", "WH-A", -5, 0, false),
		entry("5", "WH-B", 7, 1, false),
	}
	s.Bins["TORNILLO|WH-A"] = &entity.Bin{
		ItemCode: "TORNILLO", Warehouse: "WH-A",
		ActualQty: decimal.NewFromInt(999), ReservedQty: decimal.NewFromInt(2),
	}
	r := s.Repos()

	require.NoError(t, stock.RepostItemWarehouse(context.Background(), r.Ledger, r.Bins, "TORNILLO", "WH-A"))

	assert.True(t, decimal.NewFromInt(10).Equal(s.Ledger[0].QtyAfterTransaction))
	assert.True(t, decimal.NewFromInt(20).Equal(s.Ledger[1].QtyAfterTransaction))
	assert.True(t, decimal.NewFromInt(15).Equal(s.Ledger[1].ValuationRate))
	assert.True(t, decimal.NewFromInt(15).Equal(s.Ledger[3].QtyAfterTransaction))
	assert.True(t, decimal.NewFromInt(15).Equal(s.Ledger[3].ValuationRate))

	bin := s.Bins["TORNILLO|WH-A"]
	assert.True(t, decimal.NewFromInt(15).Equal(bin.ActualQty))
	assert.True(t, decimal.NewFromInt(15).Equal(bin.ValuationRate))
	assert.True(t, decimal.NewFromInt(13).Equal(bin.ProjectedQty))
	assert.NotContains(t, s.Bins, "TORNILLO|WH-B")
}
