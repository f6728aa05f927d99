package inventory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

var (
	ErrUOMUnchanged     = errors.New("la UOM actual y la nueva son iguales")
	ErrConversionFactor = errors.New("factor de conversión requerido")
	ErrItemAlreadyOnUOM = errors.New("el artículo ya tiene la nueva UOM")
	ErrUOMWholeNumber   = errors.New("tipo de UOM incompatible")
	ErrFractionalFactor = errors.New("el factor de conversión no puede ser fraccionario")
)

// UOMReplace solicitud de cambio de unidad de medida de stock de un artículo.
type UOMReplace struct {
	ItemCode         string
	CurrentStockUOM  string
	NewStockUOM      string
	ConversionFactor decimal.Decimal
}

// ValidateUOMReplace valida la solicitud contra el maestro del artículo y las dos UOM.
// current y next pueden ser nil si la UOM no está registrada (se tratan como no enteras).
func ValidateUOMReplace(req UOMReplace, item *entity.Item, current, next *entity.UOM) error {
	if req.CurrentStockUOM == req.NewStockUOM {
		return ErrUOMUnchanged
	}
	if req.ConversionFactor.IsZero() {
		return ErrConversionFactor
	}
	if item.StockUOM == req.NewStockUOM {
		return fmt.Errorf("%w: %s", ErrItemAlreadyOnUOM, req.NewStockUOM)
	}

	curWhole := current != nil && current.MustBeWholeNumber
	newWhole := next != nil && next.MustBeWholeNumber
	switch {
	case curWhole && !newWhole:
		return fmt.Errorf("%w: la nueva UOM debe ser de números enteros", ErrUOMWholeNumber)
	case !curWhole && newWhole:
		return fmt.Errorf("%w: la nueva UOM no debe ser de números enteros", ErrUOMWholeNumber)
	case curWhole && newWhole && !req.ConversionFactor.IsInteger():
		return ErrFractionalFactor
	}
	return nil
}

// ScaleBin aplica el factor a las cantidades comprometidas del bin y recalcula la proyectada.
// actual_qty se recalcula aparte con el repost del libro.
func ScaleBin(b *entity.Bin, newUOM string, factor decimal.Decimal) {
	b.StockUOM = newUOM
	if !factor.Equal(decimal.NewFromInt(1)) {
		b.IndentedQty = b.IndentedQty.Mul(factor)
		b.OrderedQty = b.OrderedQty.Mul(factor)
		b.ReservedQty = b.ReservedQty.Mul(factor)
		b.PlannedQty = b.PlannedQty.Mul(factor)
	}
	b.RecalculateProjected()
}
