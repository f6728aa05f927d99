package serialno

import (
	"errors"
	"fmt"
)

// Clases de error de validación de números de serie. Usar errors.Is contra estos valores.
var (
	ErrSerialNoNotRequired        = errors.New("número de serie no requerido")
	ErrSerialNoRequired           = errors.New("número de serie requerido")
	ErrSerialNoQty                = errors.New("cantidad no coincide con los números de serie")
	ErrSerialNoDuplicate          = errors.New("número de serie duplicado")
	ErrSerialNoItem               = errors.New("número de serie de otro artículo")
	ErrSerialNoWarehouse          = errors.New("número de serie de otra bodega")
	ErrSerialNoStatus             = errors.New("estado del número de serie inválido")
	ErrSerialNoNotExists          = errors.New("número de serie inexistente")
	ErrSerialNoMerge              = errors.New("los números de serie no se pueden fusionar")
	ErrSerialNoDelete             = errors.New("el número de serie no se puede eliminar")
	ErrSerialNoCannotCreateDirect = errors.New("un número de serie nuevo no puede tener bodega")
	ErrSerialNoCannotChange       = errors.New("campo inmutable del número de serie")
	ErrItemNotSerialized          = errors.New("el artículo no maneja número de serie")
)

// ValidationError error de validación con mensaje para el usuario. Unwrap devuelve la clase (Kind).
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
