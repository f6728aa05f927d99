// Package production reglas de la orden de producción (estados, sobreproducción, UOM entera).
package production

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

var (
	ErrInvalidStatus        = errors.New("estado de orden de producción inválido")
	ErrIncorrectBOM         = errors.New("lista de materiales incorrecta")
	ErrInvalidSalesOrder    = errors.New("pedido de venta inválido")
	ErrOverProduction       = errors.New("cantidad de producción supera el pedido de venta")
	ErrWarehouseCompany     = errors.New("la bodega no pertenece a la empresa")
	ErrWIPWarehouseRequired = errors.New("bodega de trabajo en proceso requerida")
	ErrStockEntryExists     = errors.New("existe un stock entry enviado contra la orden")
	ErrUOMMustBeWhole       = errors.New("la cantidad debe ser entera para la unidad de medida")
	ErrInvalidPurpose       = errors.New("propósito de stock entry inválido")
)

var validStatuses = map[string]bool{
	entity.ProductionStatusDraft:     true,
	entity.ProductionStatusSubmitted: true,
	entity.ProductionStatusStopped:   true,
	entity.ProductionStatusInProcess: true,
	entity.ProductionStatusCompleted: true,
	entity.ProductionStatusCancelled: true,
}

// RuleError error con mensaje para el usuario; Unwrap devuelve la clase.
type RuleError struct {
	Kind    error
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

// ValidateStatus el estado debe ser uno de los conocidos.
func ValidateStatus(status string) error {
	if validStatuses[status] {
		return nil
	}
	return &RuleError{Kind: ErrInvalidStatus, Message: fmt.Sprintf("estado inválido: %q", status)}
}

// CheckOverProduction ordered = qty ya ordenada contra el pedido (otras órdenes); soQty = qty del pedido.
func CheckOverProduction(item, salesOrder string, ordered, qty, soQty decimal.Decimal) error {
	total := ordered.Add(qty)
	if !total.GreaterThan(soQty) {
		return nil
	}
	return &RuleError{
		Kind: ErrOverProduction,
		Message: fmt.Sprintf("la cantidad total de órdenes de producción del artículo %s contra el pedido %s será %s, "+
			"mayor que la cantidad del pedido (%s); reduzca la cantidad", item, salesOrder, total.String(), soQty.String()),
	}
}

// CheckWholeNumber si la UOM exige enteros, todas las cantidades deben serlo.
func CheckWholeNumber(uom *entity.UOM, values ...decimal.Decimal) error {
	if uom == nil || !uom.MustBeWholeNumber {
		return nil
	}
	for _, v := range values {
		if !v.IsInteger() {
			return &RuleError{
				Kind:    ErrUOMMustBeWhole,
				Message: fmt.Sprintf("la cantidad %s no puede ser fraccionaria para la UOM %s", v.String(), uom.Name),
			}
		}
	}
	return nil
}

// StatusAfter estado resultante de detener/reanudar: Stopped se fija directo; al reanudar
// se deriva de lo producido. Si no aplica ninguna regla se conserva el estado actual.
func StatusAfter(current, requested string, qty, produced decimal.Decimal) string {
	if requested == entity.ProductionStatusStopped {
		return entity.ProductionStatusStopped
	}
	status := current
	if qty.Equal(produced) {
		status = entity.ProductionStatusCompleted
	}
	if qty.GreaterThan(produced) {
		status = entity.ProductionStatusInProcess
	}
	if produced.IsZero() {
		status = entity.ProductionStatusSubmitted
	}
	return status
}

// PlannedQtyDelta variación de cantidad planificada al detener (negativa) o reanudar (positiva).
func PlannedQtyDelta(requested string, qty, produced decimal.Decimal) decimal.Decimal {
	pending := qty.Sub(produced)
	if requested == entity.ProductionStatusStopped {
		return pending.Neg()
	}
	return pending
}

// MakeStockEntry arma el borrador de Stock Entry para la orden según el propósito.
func MakeStockEntry(o *entity.ProductionOrder, purpose string) (*entity.StockEntryDraft, error) {
	se := &entity.StockEntryDraft{
		Purpose:          purpose,
		ProductionOrder:  o.ID,
		Company:          o.Company,
		BOMNo:            o.BOMNo,
		UseMultiLevelBOM: o.UseMultiLevelBOM,
		FGCompletedQty:   o.Qty.Sub(o.ProducedQty),
	}
	switch purpose {
	case entity.StockEntryPurposeMaterialTransfer:
		se.ToWarehouse = o.WIPWarehouse
	case entity.StockEntryPurposeManufacture:
		se.FromWarehouse = o.WIPWarehouse
		se.ToWarehouse = o.FGWarehouse
	default:
		return nil, &RuleError{Kind: ErrInvalidPurpose, Message: fmt.Sprintf("propósito inválido: %q", purpose)}
	}
	return se, nil
}
