package serialno

import (
	"time"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// MaintenanceStatus deriva el estado de mantenimiento comparando las fechas de vencimiento
// con la fecha actual. Garantía vigente prevalece sobre AMC vigente, que prevalece sobre
// AMC vencido, que prevalece sobre garantía vencida.
func MaintenanceStatus(warrantyExpiry, amcExpiry *time.Time, today time.Time) string {
	now := dateOnly(today)
	status := ""
	if warrantyExpiry != nil && dateOnly(*warrantyExpiry).Before(now) {
		status = entity.MaintenanceOutOfWarranty
	}
	if amcExpiry != nil && dateOnly(*amcExpiry).Before(now) {
		status = entity.MaintenanceOutOfAMC
	}
	if amcExpiry != nil && !dateOnly(*amcExpiry).Before(now) {
		status = entity.MaintenanceUnderAMC
	}
	if warrantyExpiry != nil && !dateOnly(*warrantyExpiry).Before(now) {
		status = entity.MaintenanceUnderWarranty
	}
	return status
}
