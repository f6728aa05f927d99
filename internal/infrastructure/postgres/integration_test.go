//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	appsn "github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	domainsn "github.com/jhoicas/Stock-ledger-api/internal/domain/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// newTestPool levanta PostgreSQL en un contenedor y aplica las migraciones embebidas.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("stock_ledger_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := postgres.NewMigrator(dsn)
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())

	pool, err := postgres.NewPoolFromDSN(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedWidget(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, postgres.NewUOMRepository(pool).Upsert(ctx, &entity.UOM{Name: "Nos", MustBeWholeNumber: true}))
	require.NoError(t, postgres.NewItemRepository(pool).Create(ctx, &entity.Item{
		Code: "WIDGET", Name: "Widget", StockUOM: "Nos", IsStockItem: true,
		HasSerialNo: true, SerialNoSeries: "SN-.####", WarrantyPeriod: 365,
	}))
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestLedger_ReceiveDeliverAndRename(t *testing.T) {
	pool := newTestPool(t)
	seedWidget(t, pool)
	ctx := context.Background()

	tx := postgres.NewTxRunner(pool)
	items := postgres.NewItemRepository(pool)
	ledger := appsn.NewLedgerUseCase(tx, items, logger.Nop())
	serials := appsn.NewSerialNoUseCase(tx, items, logger.Nop())

	in, err := ledger.ProcessEntry(ctx, appsn.EntryInput{
		ItemCode: "WIDGET", Warehouse: "WH-A", VoucherType: entity.VoucherTypePurchaseReceipt, VoucherNo: "PR-1",
		PostingDate: day("2024-01-01"), PostingTime: "09:00:00",
		ActualQty: decimal.NewFromInt(2), IncomingRate: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"SN-0001", "SN-0002"}, in.SerialNos)

	_, err = ledger.ProcessEntry(ctx, appsn.EntryInput{
		ItemCode: "WIDGET", Warehouse: "WH-B", VoucherType: entity.VoucherTypeStockEntry, VoucherNo: "SE-1",
		PostingDate: day("2024-01-10"), PostingTime: "09:00:00",
		ActualQty: decimal.NewFromInt(-1), SerialNos: "SN-0001",
	})
	assert.ErrorIs(t, err, domainsn.ErrSerialNoWarehouse)

	_, err = ledger.ProcessEntry(ctx, appsn.EntryInput{
		ItemCode: "WIDGET", Warehouse: "WH-A", VoucherType: entity.VoucherTypeDeliveryNote, VoucherNo: "DN-1",
		PostingDate: day("2024-02-01"), PostingTime: "11:30:00",
		ActualQty: decimal.NewFromInt(-1), SerialNos: "SN-0002",
	})
	require.NoError(t, err)

	sr, err := serials.GetByID(ctx, "SN-0002")
	require.NoError(t, err)
	assert.Equal(t, entity.SerialNoStatusDelivered, sr.Status)
	assert.Empty(t, sr.Warehouse)
	require.NotNil(t, sr.WarrantyExpiryDate)
	assert.True(t, day("2024-02-01").AddDate(0, 0, 365).Equal(*sr.WarrantyExpiryDate))
	assert.Equal(t, "11:30:00", sr.DeliveryTime)

	again, err := serials.Resync(ctx, "SN-0002")
	require.NoError(t, err)
	assert.Equal(t, sr.Status, again.Status)
	assert.Equal(t, sr.DeliveryDocumentNo, again.DeliveryDocumentNo)

	assert.ErrorIs(t, serials.Delete(ctx, "SN-0002"), domainsn.ErrSerialNoDelete)

	renamed, err := serials.Rename(ctx, "SN-0001", "SN-A001", false)
	require.NoError(t, err)
	assert.Equal(t, "SN-A001", renamed.SerialNo)

	history, err := postgres.NewStockLedgerRepository(pool).ListBySerialNo(ctx, "WIDGET", "SN-A001")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []string{"SN-A001", "SN-0002"}, history[0].SerialNos)

	bin, err := postgres.NewBinRepository(pool).GetForUpdate(ctx, "WIDGET", "WH-A")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(bin.ActualQty))
}

func TestNamingSeries_NextValue(t *testing.T) {
	pool := newTestPool(t)
	repo := postgres.NewNamingSeriesRepository(pool)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.NextValue(ctx, "SN-")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	got, err := repo.NextValue(ctx, "LOT-")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
