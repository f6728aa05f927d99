package dto

import "github.com/shopspring/decimal"

// ReplaceStockUOMRequest body para POST /api/items/:code/stock-uom.
type ReplaceStockUOMRequest struct {
	NewStockUOM      string          `json:"new_stock_uom" validate:"required"`
	ConversionFactor decimal.Decimal `json:"conversion_factor" validate:"gt=0"`
}

// ReplaceStockUOMResponse resultado del cambio de unidad de stock.
type ReplaceStockUOMResponse struct {
	ItemCode           string `json:"item_code"`
	PreviousStockUOM   string `json:"previous_stock_uom"`
	NewStockUOM        string `json:"new_stock_uom"`
	LedgerEntries      int    `json:"ledger_entries"`
	BinsUpdated        int    `json:"bins_updated"`
	WarehousesReposted int    `json:"warehouses_reposted"`
}
