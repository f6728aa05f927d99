package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Stock-ledger-api/internal/application/leave"
	"github.com/jhoicas/Stock-ledger-api/internal/application/production"
	"github.com/jhoicas/Stock-ledger-api/internal/application/serialno"
	"github.com/jhoicas/Stock-ledger-api/internal/application/uom"
)

// Ensure TxRunner implements los TxRunner de cada caso de uso.
var (
	_ serialno.TxRunner   = (*TxRunner)(nil)
	_ leave.TxRunner      = (*TxRunner)(nil)
	_ production.TxRunner = (*TxRunner)(nil)
	_ uom.TxRunner        = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// inTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run ejecuta fn con los repositorios del libro de stock y números de serie atados a la tx.
func (r *TxRunner) Run(ctx context.Context, fn func(serialno.Repos) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(serialno.Repos{
			SerialNos: NewSerialNoRepository(tx),
			Ledger:    NewStockLedgerRepository(tx),
			Vouchers:  NewVoucherRepository(tx),
			Series:    NewNamingSeriesRepository(tx),
			Rewriter:  NewSerialTextRewriter(tx),
			Bins:      NewBinRepository(tx),
		})
	})
}

// RunLeave ejecuta fn con los repositorios de permisos.
func (r *TxRunner) RunLeave(ctx context.Context, fn func(leave.Repos) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(leave.Repos{
			Allocations:  NewLeaveAllocationRepository(tx),
			Applications: NewLeaveApplicationRepository(tx),
			LeaveTypes:   NewLeaveTypeRepository(tx),
			FiscalYears:  NewFiscalYearRepository(tx),
		})
	})
}

// RunProduction ejecuta fn con los repositorios de órdenes de producción.
func (r *TxRunner) RunProduction(ctx context.Context, fn func(production.Repos) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(production.Repos{
			Orders:      NewProductionOrderRepository(tx),
			BOMs:        NewBOMRepository(tx),
			SalesOrders: NewSalesOrderRepository(tx),
			Warehouses:  NewWarehouseRepository(tx),
			UOMs:        NewUOMRepository(tx),
			Bins:        NewBinRepository(tx),
			Vouchers:    NewVoucherRepository(tx),
		})
	})
}

// RunUOM ejecuta fn con los repositorios del cambio de unidad de stock.
func (r *TxRunner) RunUOM(ctx context.Context, fn func(uom.Repos) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(uom.Repos{
			Items:  NewItemRepository(tx),
			UOMs:   NewUOMRepository(tx),
			Ledger: NewStockLedgerRepository(tx),
			Bins:   NewBinRepository(tx),
		})
	})
}
