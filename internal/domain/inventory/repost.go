package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// Post aplica un movimiento sobre el saldo (qty, rate) de una bodega y devuelve el nuevo saldo.
// Las entradas recalculan el costo promedio con IncomingRate; las salidas conservan el costo.
func Post(qty, rate decimal.Decimal, e *entity.StockLedgerEntry) (decimal.Decimal, decimal.Decimal) {
	if e.IsIncoming() {
		rate = CostCalculator(qty, rate, e.ActualQty, e.IncomingRate)
	}
	return qty.Add(e.ActualQty), rate
}

// Repost recorre los movimientos de un artículo en una bodega (orden cronológico ascendente),
// fija QtyAfterTransaction y ValuationRate en cada uno y devuelve el saldo final.
func Repost(entries []*entity.StockLedgerEntry) (qty, rate decimal.Decimal) {
	qty, rate = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.IsCancelled {
			continue
		}
		qty, rate = Post(qty, rate, e)
		e.QtyAfterTransaction = qty
		e.ValuationRate = rate
	}
	return qty, rate
}
