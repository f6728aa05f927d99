// Package serialnotest provee un almacén en memoria que implementa los
// repositorios de números de serie, para pruebas de casos de uso y handlers.
package serialnotest

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	appsn "github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	domainsn "github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
)

// Store base de datos en memoria compartida por los repos falsos.
type Store struct {
	Serials  map[string]*entity.SerialNo
	Ledger   []*entity.StockLedgerEntry
	Vouchers map[string]*entity.Voucher
	Lines    []*entity.VoucherItem
	Counters map[string]int64
	Bins     map[string]*entity.Bin
	Items    map[string]*entity.Item
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		Serials:  map[string]*entity.SerialNo{},
		Vouchers: map[string]*entity.Voucher{},
		Counters: map[string]int64{},
		Bins:     map[string]*entity.Bin{},
		Items:    map[string]*entity.Item{},
	}
}

// Repos devuelve los repositorios falsos sobre el almacén.
func (s *Store) Repos() appsn.Repos {
	return appsn.Repos{
		SerialNos: &fakeSerials{s},
		Ledger:    &fakeLedger{s},
		Vouchers:  &fakeVouchers{s},
		Series:    &fakeSeries{s},
		Rewriter:  &fakeRewriter{s},
		Bins:      &fakeBins{s},
	}
}

// Tx devuelve un TxRunner que ejecuta fn sin transacción real.
func (s *Store) Tx() appsn.TxRunner { return &fakeTx{s} }

// ItemRepo devuelve el repositorio de artículos sobre Items.
func (s *Store) ItemRepo() repository.ItemRepository { return &fakeItems{s} }

type fakeTx struct{ s *Store }

func (t *fakeTx) Run(_ context.Context, fn func(r appsn.Repos) error) error { return fn(t.s.Repos()) }

type fakeItems struct{ s *Store }

func (f *fakeItems) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	return f.s.Items[code], nil
}

func (f *fakeItems) UpdateStockUOM(_ context.Context, code, uom string) error {
	f.s.Items[code].StockUOM = uom
	return nil
}

type fakeSerials struct{ s *Store }

func (f *fakeSerials) Exists(_ context.Context, sn string) (bool, error) {
	_, ok := f.s.Serials[sn]
	return ok, nil
}

func (f *fakeSerials) GetByID(_ context.Context, sn string) (*entity.SerialNo, error) {
	sr, ok := f.s.Serials[sn]
	if !ok {
		return nil, nil
	}
	cp := *sr
	return &cp, nil
}

func (f *fakeSerials) GetForUpdate(ctx context.Context, sn string) (*entity.SerialNo, error) {
	return f.GetByID(ctx, sn)
}

func (f *fakeSerials) Create(_ context.Context, sr *entity.SerialNo) error {
	cp := *sr
	f.s.Serials[sr.SerialNo] = &cp
	return nil
}

func (f *fakeSerials) Update(_ context.Context, sr *entity.SerialNo) error {
	cp := *sr
	f.s.Serials[sr.SerialNo] = &cp
	return nil
}

func (f *fakeSerials) UpdateWarehouse(_ context.Context, sn, wh string) error {
	f.s.Serials[sn].Warehouse = wh
	return nil
}

func (f *fakeSerials) Delete(_ context.Context, sn string) error {
	delete(f.s.Serials, sn)
	return nil
}

func (f *fakeSerials) Rename(_ context.Context, oldSN, newSN string) error {
	sr := f.s.Serials[oldSN]
	delete(f.s.Serials, oldSN)
	sr.SerialNo = newSN
	f.s.Serials[newSN] = sr
	return nil
}

type fakeRewriter struct{ s *Store }

func (f *fakeRewriter) RewriteSerialNo(_ context.Context, oldSN, newSN string) (int, error) {
	n := 0
	for _, e := range f.s.Ledger {
		if text, ok := domainsn.ReplaceInList(domainsn.Format(e.SerialNos), oldSN, newSN); ok {
			e.SerialNos = domainsn.Parse(text)
			n++
		}
	}
	for _, l := range f.s.Lines {
		if text, ok := domainsn.ReplaceInList(domainsn.Format(l.SerialNos), oldSN, newSN); ok {
			l.SerialNos = domainsn.Parse(text)
			n++
		}
	}
	return n, nil
}

type fakeLedger struct{ s *Store }

func (f *fakeLedger) Create(_ context.Context, e *entity.StockLedgerEntry) error {
	cp := *e
	f.s.Ledger = append(f.s.Ledger, &cp)
	return nil
}

func (f *fakeLedger) ListBySerialNo(_ context.Context, itemCode, sn string) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range f.s.Ledger {
		if e.ItemCode == itemCode && !e.IsCancelled && strings.Contains(domainsn.Format(e.SerialNos), sn) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.PostingDate.Equal(b.PostingDate) {
			return a.PostingDate.After(b.PostingDate)
		}
		if a.PostingTime != b.PostingTime {
			return a.PostingTime > b.PostingTime
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (f *fakeLedger) ListByVoucher(_ context.Context, voucherType, voucherNo string) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range f.s.Ledger {
		if e.VoucherType == voucherType && e.VoucherNo == voucherNo {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedger) CancelVoucher(_ context.Context, voucherType, voucherNo string) (int, error) {
	n := 0
	for _, e := range f.s.Ledger {
		if e.VoucherType == voucherType && e.VoucherNo == voucherNo && !e.IsCancelled {
			e.IsCancelled = true
			n++
		}
	}
	return n, nil
}

func (f *fakeLedger) ListByItemWarehouse(_ context.Context, itemCode, warehouse string) ([]*entity.StockLedgerEntry, error) {
	var out []*entity.StockLedgerEntry
	for _, e := range f.s.Ledger {
		if e.ItemCode == itemCode && e.Warehouse == warehouse && !e.IsCancelled {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLedger) ListWarehousesForItem(_ context.Context, itemCode string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, e := range f.s.Ledger {
		if e.ItemCode == itemCode && !seen[e.Warehouse] {
			seen[e.Warehouse] = true
			out = append(out, e.Warehouse)
		}
	}
	return out, nil
}

func (f *fakeLedger) UpdateValuation(_ context.Context, id string, qty, rate decimal.Decimal) error {
	for _, e := range f.s.Ledger {
		if e.ID == id {
			e.QtyAfterTransaction, e.ValuationRate = qty, rate
		}
	}
	return nil
}

func (f *fakeLedger) ConvertItemUOM(_ context.Context, itemCode, uom string, factor decimal.Decimal) (int, error) {
	n := 0
	for _, e := range f.s.Ledger {
		if e.ItemCode == itemCode {
			e.StockUOM = uom
			e.ActualQty = e.ActualQty.Mul(factor)
			n++
		}
	}
	return n, nil
}

type fakeVouchers struct{ s *Store }

func (f *fakeVouchers) Get(_ context.Context, voucherType, voucherNo string) (*entity.Voucher, error) {
	return f.s.Vouchers[voucherType+"|"+voucherNo], nil
}

func (f *fakeVouchers) ListItems(_ context.Context, voucherType, voucherNo string) ([]*entity.VoucherItem, error) {
	var out []*entity.VoucherItem
	for _, l := range f.s.Lines {
		if l.VoucherType == voucherType && l.VoucherNo == voucherNo {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeVouchers) UpdateItemSerialNos(_ context.Context, itemID string, serials []string) error {
	for _, l := range f.s.Lines {
		if l.ID == itemID {
			l.SerialNos = serials
		}
	}
	return nil
}

func (f *fakeVouchers) FirstSubmittedStockEntry(context.Context, string) (string, error) { return "", nil }

type fakeSeries struct{ s *Store }

func (f *fakeSeries) NextValue(_ context.Context, prefix string) (int64, error) {
	f.s.Counters[prefix]++
	return f.s.Counters[prefix], nil
}

type fakeBins struct{ s *Store }

func (f *fakeBins) GetForUpdate(_ context.Context, itemCode, warehouse string) (*entity.Bin, error) {
	if b, ok := f.s.Bins[itemCode+"|"+warehouse]; ok {
		cp := *b
		return &cp, nil
	}
	return &entity.Bin{ItemCode: itemCode, Warehouse: warehouse}, nil
}

func (f *fakeBins) Upsert(_ context.Context, b *entity.Bin) error {
	cp := *b
	f.s.Bins[b.ItemCode+"|"+b.Warehouse] = &cp
	return nil
}

func (f *fakeBins) ListByItem(_ context.Context, itemCode string) ([]*entity.Bin, error) {
	var out []*entity.Bin
	for _, b := range f.s.Bins {
		if b.ItemCode == itemCode {
			out = append(out, b)
		}
	}
	return out, nil
}
