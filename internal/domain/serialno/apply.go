package serialno

import "github.com/jhoicas/Stock-ledger-api/internal/domain/entity"

// Action efecto de persistencia requerido por un movimiento sobre un número de serie.
type Action int

const (
	// ActionUpdateWarehouse actualiza la bodega de un número de serie existente.
	ActionUpdateWarehouse Action = iota + 1
	// ActionCreate crea el número de serie (alta en dos fases: insert sin bodega y luego update).
	ActionCreate
)

// Step un efecto a ejecutar.
type Step struct {
	SerialNo  string
	Action    Action
	Warehouse string // destino; vacío = fuera de stock
}

// NeedsGeneration indica si el movimiento debe recibir números de serie autogenerados.
func NeedsGeneration(e *entity.StockLedgerEntry, item *entity.Item) bool {
	return !e.IsCancelled && len(e.SerialNos) == 0 && e.ActualQty.IsPositive() && item.SerialNoSeries != ""
}

// GenerationCount cantidad de números de serie a generar (parte entera de la cantidad).
func GenerationCount(e *entity.StockLedgerEntry) int {
	return int(e.ActualQty.IntPart())
}

// PlanApply calcula los efectos de un movimiento ya validado.
func PlanApply(e *entity.StockLedgerEntry, registered map[string]*entity.SerialNo) []Step {
	steps := make([]Step, 0, len(e.SerialNos))
	incoming := e.ActualQty.IsPositive()
	for _, sn := range e.SerialNos {
		if sr, ok := registered[sn]; ok && sr != nil {
			wh := ""
			if incoming {
				wh = e.Warehouse
			}
			steps = append(steps, Step{SerialNo: sn, Action: ActionUpdateWarehouse, Warehouse: wh})
			continue
		}
		if incoming {
			steps = append(steps, Step{SerialNo: sn, Action: ActionCreate, Warehouse: e.Warehouse})
		}
	}
	return steps
}
