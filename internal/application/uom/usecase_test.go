package uom_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appuom "github.com/jhoicas/Stock-ledger-api/internal/application/uom"
	"github.com/jhoicas/Stock-ledger-api/internal/domain"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/inventory"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type memUOM struct {
	items     map[string]*entity.Item
	uoms      map[string]*entity.UOM
	ledger    []*entity.StockLedgerEntry
	bins      map[string]*entity.Bin
	forgotten []string
}

func (m *memUOM) RunUOM(_ context.Context, fn func(r appuom.Repos) error) error {
	return fn(appuom.Repos{Items: itemRepo{m}, UOMs: uomRepo{m}, Ledger: ledgerRepo{m}, Bins: binRepo{m}})
}

func (m *memUOM) Forget(_ context.Context, code string) { m.forgotten = append(m.forgotten, code) }

type itemRepo struct{ m *memUOM }

func (r itemRepo) GetByCode(_ context.Context, code string) (*entity.Item, error) { return r.m.items[code], nil }
func (r itemRepo) UpdateStockUOM(_ context.Context, code, uom string) error {
	r.m.items[code].StockUOM = uom
	return nil
}

type uomRepo struct{ m *memUOM }

func (r uomRepo) GetByName(_ context.Context, name string) (*entity.UOM, error) { return r.m.uoms[name], nil }

type ledgerRepo struct{ m *memUOM }

func (r ledgerRepo) Create(context.Context, *entity.StockLedgerEntry) error { return nil }
func (r ledgerRepo) ListBySerialNo(context.Context, string, string) ([]*entity.StockLedgerEntry, error) {
	return nil, nil
}
func (r ledgerRepo) ListByVoucher(context.Context, string, string) ([]*entity.StockLedgerEntry, error) {
	return nil, nil
}
func (r ledgerRepo) CancelVoucher(context.Context, string, string) (int, error) { return 0, nil }
func (r ledgerRepo) ListByItemWarehouse(_ context.Context, item, wh string) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range r.m.ledger {
		if e.ItemCode == item && e.Warehouse == wh {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r ledgerRepo) ListWarehousesForItem(_ context.Context, item string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, e := range r.m.ledger {
		if e.ItemCode == item && !seen[e.Warehouse] {
			seen[e.Warehouse] = true
			out = append(out, e.Warehouse)
		}
	}
	return out, nil
}
func (r ledgerRepo) UpdateValuation(_ context.Context, id string, qty, rate decimal.Decimal) error {
	for _, e := range r.m.ledger {
		if e.ID == id {
			e.QtyAfterTransaction, e.ValuationRate = qty, rate
		}
	}
	return nil
}
func (r ledgerRepo) ConvertItemUOM(_ context.Context, item, uom string, factor decimal.Decimal) (int, error) {
	n := 0
	for _, e := range r.m.ledger {
		if e.ItemCode == item {
			e.StockUOM = uom
			e.ActualQty = e.ActualQty.Mul(factor)
			n++
		}
	}
	return n, nil
}

type binRepo struct{ m *memUOM }

func (r binRepo) GetForUpdate(_ context.Context, item, wh string) (*entity.Bin, error) {
	if b, ok := r.m.bins[item+"|"+wh]; ok {
		cp := *b
		return &cp, nil
	}
	return &entity.Bin{ItemCode: item, Warehouse: wh}, nil
}
func (r binRepo) Upsert(_ context.Context, b *entity.Bin) error {
	cp := *b
	r.m.bins[b.ItemCode+"|"+b.Warehouse] = &cp
	return nil
}
func (r binRepo) ListByItem(_ context.Context, item string) ([]*entity.Bin, error) {
	var out []*entity.Bin
	for _, b := range r.m.bins {
		if b.ItemCode == item {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newMem() *memUOM {
	return &memUOM{
		items: map[string]*entity.Item{"CAJA": {Code: "CAJA", StockUOM: "Box"}},
		uoms: map[string]*entity.UOM{
			"Box": {Name: "Box", MustBeWholeNumber: true},
			"Nos": {Name: "Nos", MustBeWholeNumber: true},
			"Kg":  {Name: "Kg"},
		},
		ledger: []*entity.StockLedgerEntry{
			{ID: "1", ItemCode: "CAJA", Warehouse: "WH-A", StockUOM: "Box", ActualQty: d("2"), IncomingRate: d("120")},
			{ID: "2", ItemCode: "CAJA", Warehouse: "WH-A", StockUOM: "Box", ActualQty: d("-1")},
		},
		bins: map[string]*entity.Bin{
			"CAJA|WH-A": {ItemCode: "CAJA", Warehouse: "WH-A", StockUOM: "Box", ActualQty: d("1"), ReservedQty: d("1"), ValuationRate: d("120")},
		},
	}
}

func TestReplace(t *testing.T) {
	m := newMem()
	uc := appuom.NewReplaceUseCase(m, m, logger.Nop())

	res, err := uc.Replace(context.Background(), inventory.UOMReplace{ItemCode: "CAJA", NewStockUOM: "Nos", ConversionFactor: d("12")})
	require.NoError(t, err)
	assert.Equal(t, 2, res.LedgerEntries)
	assert.Equal(t, 1, res.BinsUpdated)
	assert.Equal(t, 1, res.WarehousesReposted)

	assert.Equal(t, "Nos", m.items["CAJA"].StockUOM)
	assert.True(t, d("24").Equal(m.ledger[0].ActualQty))
	assert.True(t, d("12").Equal(m.ledger[1].QtyAfterTransaction))

	bin := m.bins["CAJA|WH-A"]
	assert.Equal(t, "Nos", bin.StockUOM)
	assert.True(t, d("12").Equal(bin.ActualQty))
	assert.True(t, d("12").Equal(bin.ReservedQty))
	assert.True(t, bin.ProjectedQty.IsZero())
	assert.Equal(t, []string{"CAJA"}, m.forgotten)
}

func TestReplace_Validaciones(t *testing.T) {
	m := newMem()
	uc := appuom.NewReplaceUseCase(m, nil, logger.Nop())
	ctx := context.Background()

	_, err := uc.Replace(ctx, inventory.UOMReplace{ItemCode: "CAJA", NewStockUOM: "Kg", ConversionFactor: d("2")})
	assert.ErrorIs(t, err, inventory.ErrUOMWholeNumber)

	_, err = uc.Replace(ctx, inventory.UOMReplace{ItemCode: "CAJA", NewStockUOM: "Nos", ConversionFactor: d("0.5")})
	assert.ErrorIs(t, err, inventory.ErrFractionalFactor)

	_, err = uc.Replace(ctx, inventory.UOMReplace{ItemCode: "NOPE", NewStockUOM: "Nos", ConversionFactor: d("2")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cur, err := uc.CurrentStockUOM(ctx, "CAJA")
	require.NoError(t, err)
	assert.Equal(t, "Box", cur)
}
