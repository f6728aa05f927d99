// Package leave reglas de asignación de permisos (múltiplos de medio día, saldo vs solicitudes).
package leave

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotHalfDayMultiple     = errors.New("los días asignados deben ser múltiplo de 0.5")
	ErrAlreadyAllocated       = errors.New("permiso ya asignado para el año fiscal")
	ErrBelowApplied           = errors.New("asignación menor a los días ya solicitados")
	ErrCarryForwardNotAllowed = errors.New("el tipo de permiso no permite arrastre")
	ErrLeaveApplicationExists = errors.New("existen solicitudes de permiso enviadas")
)

var half = decimal.NewFromFloat(0.5)

// RuleError error con mensaje para el usuario; Unwrap devuelve la clase.
type RuleError struct {
	Kind    error
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

// CheckHalfDayMultiple valida que el valor sea múltiplo de 0.5 y sugiere los dos valores válidos más cercanos.
func CheckHalfDayMultiple(newLeaves decimal.Decimal) error {
	if newLeaves.Mod(half).IsZero() {
		return nil
	}
	guess := newLeaves.Mul(decimal.NewFromInt(2)).Round(0).Div(decimal.NewFromInt(2))
	return &RuleError{
		Kind: ErrNotHalfDayMultiple,
		Message: fmt.Sprintf("los días asignados deben ser múltiplo de 0.5; quizás quiso ingresar %s o %s",
			guess.String(), guess.Add(half).String()),
	}
}

// Total días totales = arrastrados + nuevos.
func Total(carryForwarded, newLeaves decimal.Decimal) decimal.Decimal {
	return carryForwarded.Add(newLeaves)
}

// CheckApplied valida que el total asignado cubra los días ya solicitados; el mensaje
// indica el mínimo de días nuevos necesario.
func CheckApplied(employee string, newLeaves, total, applied decimal.Decimal) error {
	if !applied.GreaterThan(total) {
		return nil
	}
	expected := newLeaves.Add(applied.Sub(total))
	return &RuleError{
		Kind: ErrBelowApplied,
		Message: fmt.Sprintf("el empleado %s ya solicitó %s días; los días nuevos asignados deben ser al menos %s",
			employee, applied.String(), expected.String()),
	}
}

// CheckNotAllocated existing es el ID de otra asignación enviada ("" si no hay).
func CheckNotAllocated(existing, leaveType, employee, fiscalYear string) error {
	if existing == "" {
		return nil
	}
	return &RuleError{
		Kind: ErrAlreadyAllocated,
		Message: fmt.Sprintf("%s ya está asignado al empleado %s para el año fiscal %s (asignación %s)",
			leaveType, employee, fiscalYear, existing),
	}
}

// CarryForwardBalance saldo arrastrable del año anterior.
func CarryForwardBalance(allocated, applied decimal.Decimal) decimal.Decimal {
	return allocated.Sub(applied)
}
