package serialno

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// CheckDelete impide eliminar un número de serie entregado o que sigue en una bodega.
func CheckDelete(sr *entity.SerialNo) error {
	if sr.Status == entity.SerialNoStatusDelivered {
		return newError(ErrSerialNoDelete, "el número de serie entregado %s no se puede eliminar", sr.SerialNo)
	}
	if sr.InStock() {
		return newError(ErrSerialNoDelete,
			"no se puede eliminar el número de serie %s mientras esté en bodega; primero dele salida", sr.SerialNo)
	}
	return nil
}

// CheckRename impide fusionar números de serie.
func CheckRename(merge bool) error {
	if merge {
		return newError(ErrSerialNoMerge, "los números de serie no se pueden fusionar")
	}
	return nil
}

// CheckNew un número de serie dado de alta manualmente no puede traer bodega;
// la bodega la asigna el libro de stock.
func CheckNew(sr *entity.SerialNo) error {
	if sr.InStock() {
		return newError(ErrSerialNoCannotCreateDirect,
			"un número de serie nuevo no puede tener bodega; se asigna con una entrada de stock o recepción de compra")
	}
	return nil
}

// CheckUpdate compara el registro guardado con el modificado: el artículo nunca cambia y
// la bodega solo cambia desde el libro de stock (viaLedger).
func CheckUpdate(stored, updated *entity.SerialNo, viaLedger bool) error {
	if stored.ItemCode != updated.ItemCode {
		return newError(ErrSerialNoCannotChange, "el código de artículo del número de serie no se puede cambiar")
	}
	if !viaLedger && stored.Warehouse != updated.Warehouse {
		return newError(ErrSerialNoCannotChange, "la bodega del número de serie no se puede cambiar")
	}
	return nil
}

// CheckItem el artículo debe manejar número de serie.
func CheckItem(item *entity.Item) error {
	if !item.HasSerialNo {
		return newError(ErrItemNotSerialized, "el artículo debe tener 'Has Serial No' activo: %s", item.Code)
	}
	return nil
}

// ApplyItemDetails copia del artículo los datos descriptivos y el período de garantía.
func ApplyItemDetails(sr *entity.SerialNo, item *entity.Item) {
	sr.ItemName = item.Name
	sr.ItemGroup = item.ItemGroup
	sr.Description = item.Description
	sr.Brand = item.Brand
	sr.WarrantyPeriod = item.WarrantyPeriod
}
