package entity

import "time"

// Item representa el maestro de artículos (solo los campos que usa el libro de stock).
type Item struct {
	Code           string
	Name           string
	Description    string
	ItemGroup      string
	Brand          string
	StockUOM       string
	IsStockItem    bool
	HasSerialNo    bool
	SerialNoSeries string // patrón de serie, ej. "SN-.####"; vacío = sin autonumeración
	WarrantyPeriod int    // días; 0 = sin garantía
	EndOfLife      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsEndOfLife indica si el artículo ya no está vigente a la fecha dada.
func (i *Item) IsEndOfLife(now time.Time) bool {
	return i.EndOfLife != nil && !i.EndOfLife.After(now)
}
