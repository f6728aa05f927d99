package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bin representa las cantidades materializadas de un artículo en una bodega.
type Bin struct {
	ItemCode      string
	Warehouse     string
	StockUOM      string
	ActualQty     decimal.Decimal
	OrderedQty    decimal.Decimal
	IndentedQty   decimal.Decimal
	ReservedQty   decimal.Decimal
	PlannedQty    decimal.Decimal
	ProjectedQty  decimal.Decimal
	ValuationRate decimal.Decimal
	UpdatedAt     time.Time
}

// RecalculateProjected projected = actual + ordered + indented + planned - reserved.
func (b *Bin) RecalculateProjected() {
	b.ProjectedQty = b.ActualQty.Add(b.OrderedQty).Add(b.IndentedQty).Add(b.PlannedQty).Sub(b.ReservedQty)
}
