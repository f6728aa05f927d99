package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// CreateProductionOrderRequest body para POST /api/production-orders.
type CreateProductionOrderRequest struct {
	Company              string          `json:"company" validate:"required"`
	ProductionItem       string          `json:"production_item" validate:"required"`
	BOMNo                string          `json:"bom_no"`
	UseMultiLevelBOM     bool            `json:"use_multi_level_bom"`
	Qty                  decimal.Decimal `json:"qty" validate:"gt=0"`
	SalesOrder           string          `json:"sales_order"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date" validate:"omitempty,datetime=2006-01-02"`
	FGWarehouse          string          `json:"fg_warehouse" validate:"required"`
	WIPWarehouse         string          `json:"wip_warehouse"`
}

// MakeStockEntryRequest body para POST /api/production-orders/:id/stock-entry.
type MakeStockEntryRequest struct {
	Purpose string `json:"purpose" validate:"required,oneof='Material Transfer' 'Manufacture/Repack'"`
}

// ProductionOrderResponse orden de producción.
type ProductionOrderResponse struct {
	ID                   string          `json:"id"`
	Company              string          `json:"company"`
	ProductionItem       string          `json:"production_item"`
	BOMNo                string          `json:"bom_no"`
	Qty                  decimal.Decimal `json:"qty"`
	ProducedQty          decimal.Decimal `json:"produced_qty"`
	StockUOM             string          `json:"stock_uom"`
	SalesOrder           string          `json:"sales_order,omitempty"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date,omitempty"`
	FGWarehouse          string          `json:"fg_warehouse"`
	WIPWarehouse         string          `json:"wip_warehouse,omitempty"`
	Status               string          `json:"status"`
	DocStatus            int             `json:"docstatus"`
}

// NewProductionOrderResponse mapea la entidad al DTO.
func NewProductionOrderResponse(o *entity.ProductionOrder) ProductionOrderResponse {
	return ProductionOrderResponse{
		ID:                   o.ID,
		Company:              o.Company,
		ProductionItem:       o.ProductionItem,
		BOMNo:                o.BOMNo,
		Qty:                  o.Qty,
		ProducedQty:          o.ProducedQty,
		StockUOM:             o.StockUOM,
		SalesOrder:           o.SalesOrder,
		ExpectedDeliveryDate: FormatDate(o.ExpectedDeliveryDate),
		FGWarehouse:          o.FGWarehouse,
		WIPWarehouse:         o.WIPWarehouse,
		Status:               o.Status,
		DocStatus:            o.DocStatus,
	}
}

// StockEntryDraftResponse borrador de Stock Entry.
type StockEntryDraftResponse struct {
	Purpose          string          `json:"purpose"`
	ProductionOrder  string          `json:"production_order"`
	Company          string          `json:"company"`
	BOMNo            string          `json:"bom_no"`
	UseMultiLevelBOM bool            `json:"use_multi_level_bom"`
	FGCompletedQty   decimal.Decimal `json:"fg_completed_qty"`
	FromWarehouse    string          `json:"from_warehouse,omitempty"`
	ToWarehouse      string          `json:"to_warehouse,omitempty"`
}

// ProductionItemDetailsResponse datos para precargar una orden.
type ProductionItemDetailsResponse struct {
	StockUOM    string `json:"stock_uom"`
	Description string `json:"description"`
	BOMNo       string `json:"bom_no"`
}
