package entity

// UOM unidad de medida.
type UOM struct {
	Name              string
	MustBeWholeNumber bool
}
