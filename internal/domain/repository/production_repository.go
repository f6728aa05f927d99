package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// ProductionOrderRepository define el puerto de persistencia para órdenes de producción.
type ProductionOrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ProductionOrder, error)
	Create(ctx context.Context, o *entity.ProductionOrder) error
	Update(ctx context.Context, o *entity.ProductionOrder) error
	// SumQtyAgainstSalesOrder suma qty de las órdenes no canceladas del artículo contra el pedido, excluyendo excludeID.
	SumQtyAgainstSalesOrder(ctx context.Context, item, salesOrder, excludeID string) (decimal.Decimal, error)
}

// BOMRepository define el puerto de lectura de listas de materiales.
type BOMRepository interface {
	GetByName(ctx context.Context, name string) (*entity.BOM, error)
	GetDefaultForItem(ctx context.Context, item string) (*entity.BOM, error)
}

// SalesOrderRepository define el puerto de lectura de pedidos de venta.
type SalesOrderRepository interface {
	GetByName(ctx context.Context, name string) (*entity.SalesOrder, error)
	// SumItemQty suma qty del artículo en las líneas del pedido.
	SumItemQty(ctx context.Context, salesOrder, item string) (decimal.Decimal, error)
	// SumPackedQty suma qty del artículo en los ítems empacados (bundles) del pedido.
	SumPackedQty(ctx context.Context, salesOrder, item string) (decimal.Decimal, error)
}
