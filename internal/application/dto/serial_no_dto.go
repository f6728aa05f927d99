package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// RegisterSerialNoRequest body para POST /api/serial-nos.
type RegisterSerialNoRequest struct {
	SerialNo           string `json:"serial_no" validate:"required,max=140"`
	ItemCode           string `json:"item_code" validate:"required"`
	Company            string `json:"company"`
	Warehouse          string `json:"warehouse"`
	WarrantyExpiryDate string `json:"warranty_expiry_date" validate:"omitempty,datetime=2006-01-02"`
	AMCExpiryDate      string `json:"amc_expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateSerialNoRequest body para PUT /api/serial-nos/:serial_no.
// item_code y warehouse solo se aceptan si no cambian.
type UpdateSerialNoRequest struct {
	ItemCode           *string `json:"item_code,omitempty"`
	Warehouse          *string `json:"warehouse,omitempty"`
	WarrantyExpiryDate string  `json:"warranty_expiry_date" validate:"omitempty,datetime=2006-01-02"`
	AMCExpiryDate      string  `json:"amc_expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// RenameSerialNoRequest body para POST /api/serial-nos/:serial_no/rename.
type RenameSerialNoRequest struct {
	NewSerialNo string `json:"new_serial_no" validate:"required,max=140"`
	Merge       bool   `json:"merge"`
}

// SerialNoResponse número de serie con su estado derivado.
type SerialNoResponse struct {
	SerialNo             string          `json:"serial_no"`
	ItemCode             string          `json:"item_code"`
	ItemName             string          `json:"item_name"`
	Description          string          `json:"description"`
	Company              string          `json:"company"`
	Warehouse            string          `json:"warehouse"`
	Status               string          `json:"status"`
	MaintenanceStatus    string          `json:"maintenance_status"`
	WarrantyPeriod       int             `json:"warranty_period"`
	WarrantyExpiryDate   string          `json:"warranty_expiry_date,omitempty"`
	AMCExpiryDate        string          `json:"amc_expiry_date,omitempty"`
	PurchaseDocumentType string          `json:"purchase_document_type,omitempty"`
	PurchaseDocumentNo   string          `json:"purchase_document_no,omitempty"`
	PurchaseDate         string          `json:"purchase_date,omitempty"`
	PurchaseTime         string          `json:"purchase_time,omitempty"`
	PurchaseRate         decimal.Decimal `json:"purchase_rate"`
	Supplier             string          `json:"supplier,omitempty"`
	SupplierName         string          `json:"supplier_name,omitempty"`
	DeliveryDocumentType string          `json:"delivery_document_type,omitempty"`
	DeliveryDocumentNo   string          `json:"delivery_document_no,omitempty"`
	DeliveryDate         string          `json:"delivery_date,omitempty"`
	DeliveryTime         string          `json:"delivery_time,omitempty"`
	Customer             string          `json:"customer,omitempty"`
	CustomerName         string          `json:"customer_name,omitempty"`
}

// NewSerialNoResponse mapea la entidad al DTO.
func NewSerialNoResponse(s *entity.SerialNo) SerialNoResponse {
	return SerialNoResponse{
		SerialNo:             s.SerialNo,
		ItemCode:             s.ItemCode,
		ItemName:             s.ItemName,
		Description:          s.Description,
		Company:              s.Company,
		Warehouse:            s.Warehouse,
		Status:               s.Status,
		MaintenanceStatus:    s.MaintenanceStatus,
		WarrantyPeriod:       s.WarrantyPeriod,
		WarrantyExpiryDate:   FormatDate(s.WarrantyExpiryDate),
		AMCExpiryDate:        FormatDate(s.AMCExpiryDate),
		PurchaseDocumentType: s.PurchaseDocumentType,
		PurchaseDocumentNo:   s.PurchaseDocumentNo,
		PurchaseDate:         FormatDate(s.PurchaseDate),
		PurchaseTime:         s.PurchaseTime,
		PurchaseRate:         s.PurchaseRate,
		Supplier:             s.Supplier,
		SupplierName:         s.SupplierName,
		DeliveryDocumentType: s.DeliveryDocumentType,
		DeliveryDocumentNo:   s.DeliveryDocumentNo,
		DeliveryDate:         FormatDate(s.DeliveryDate),
		DeliveryTime:         s.DeliveryTime,
		Customer:             s.Customer,
		CustomerName:         s.CustomerName,
	}
}
