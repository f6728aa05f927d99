package serialno

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	SerialNos repository.SerialNoRepository
	Ledger    repository.StockLedgerRepository
	Vouchers  repository.VoucherRepository
	Series    repository.NamingSeriesRepository
	Rewriter  repository.SerialTextRewriter
	Bins      repository.BinRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que validación, registro del movimiento y actualización de series sean atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// CardGenerator genera la ficha PDF de un número de serie con su historial de movimientos.
type CardGenerator interface {
	SerialNoCard(sr *entity.SerialNo, history []*entity.StockLedgerEntry) ([]byte, error)
}
