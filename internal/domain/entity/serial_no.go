package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un número de serie.
const (
	SerialNoStatusAvailable        = "Available"
	SerialNoStatusDelivered        = "Delivered"
	SerialNoStatusSalesReturned    = "Sales Returned"
	SerialNoStatusPurchaseReturned = "Purchase Returned"
	SerialNoStatusNotAvailable     = "Not Available"
)

// Estados de mantenimiento (garantía / contrato AMC). Vacío = sin fechas.
const (
	MaintenanceUnderWarranty = "Under Warranty"
	MaintenanceOutOfWarranty = "Out of Warranty"
	MaintenanceUnderAMC      = "Under AMC"
	MaintenanceOutOfAMC      = "Out of AMC"
)

// SerialNo representa una unidad física rastreada por número de serie.
// Warehouse vacío significa que la unidad no está en stock.
type SerialNo struct {
	SerialNo          string // clave, siempre en mayúsculas
	ItemCode          string
	Company           string
	Warehouse         string
	Status            string
	MaintenanceStatus string

	ItemName       string
	ItemGroup      string
	Description    string
	Brand          string
	WarrantyPeriod int // días

	WarrantyExpiryDate *time.Time
	AMCExpiryDate      *time.Time

	// Procedencia de compra (último movimiento de entrada)
	PurchaseDocumentType string
	PurchaseDocumentNo   string
	PurchaseDate         *time.Time
	PurchaseTime         string
	PurchaseRate         decimal.Decimal
	Supplier             string
	SupplierName         string

	// Procedencia de venta/entrega (último movimiento de salida)
	DeliveryDocumentType string
	DeliveryDocumentNo   string
	DeliveryDate         *time.Time
	DeliveryTime         string
	Customer             string
	CustomerName         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InStock indica si la unidad está asignada a una bodega.
func (s *SerialNo) InStock() bool {
	return s.Warehouse != ""
}
