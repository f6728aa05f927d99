package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de producción.
const (
	ProductionStatusDraft     = "Draft"
	ProductionStatusSubmitted = "Submitted"
	ProductionStatusStopped   = "Stopped"
	ProductionStatusInProcess = "In Process"
	ProductionStatusCompleted = "Completed"
	ProductionStatusCancelled = "Cancelled"
)

// Propósitos de Stock Entry generados desde una orden de producción.
const (
	StockEntryPurposeMaterialTransfer = "Material Transfer"
	StockEntryPurposeManufacture      = "Manufacture/Repack"
)

// ProductionOrder orden de producción de un artículo terminado.
type ProductionOrder struct {
	ID                   string
	Company              string
	ProductionItem       string
	BOMNo                string
	UseMultiLevelBOM     bool
	Qty                  decimal.Decimal
	ProducedQty          decimal.Decimal
	StockUOM             string
	SalesOrder           string
	ExpectedDeliveryDate *time.Time
	FGWarehouse          string
	WIPWarehouse         string
	Status               string
	DocStatus            int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// BOM lista de materiales.
type BOM struct {
	Name      string
	Item      string
	IsActive  bool
	IsDefault bool
	DocStatus int
}

// SalesOrder cabecera de pedido de venta (campos usados por producción).
type SalesOrder struct {
	Name         string
	DeliveryDate *time.Time
	DocStatus    int
}

// StockEntryDraft borrador de Stock Entry generado desde una orden de producción.
type StockEntryDraft struct {
	Purpose          string
	ProductionOrder  string
	Company          string
	BOMNo            string
	UseMultiLevelBOM bool
	FGCompletedQty   decimal.Decimal
	FromWarehouse    string
	ToWarehouse      string
}
