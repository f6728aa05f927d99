package repository

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// SerialNoRepository define el puerto de persistencia para números de serie (clave = número de serie).
type SerialNoRepository interface {
	Exists(ctx context.Context, serialNo string) (bool, error)
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, serialNo string) (*entity.SerialNo, error)
	// GetForUpdate igual que GetByID pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, serialNo string) (*entity.SerialNo, error)
	Create(ctx context.Context, sr *entity.SerialNo) error
	Update(ctx context.Context, sr *entity.SerialNo) error
	// UpdateWarehouse actualiza solo la bodega; warehouse vacío = NULL.
	UpdateWarehouse(ctx context.Context, serialNo, warehouse string) error
	Delete(ctx context.Context, serialNo string) error
	Rename(ctx context.Context, oldSerialNo, newSerialNo string) error
}

// SerialTextRewriter reescribe old -> new en todas las columnas de texto que guardan
// listas de números de serie. Devuelve la cantidad de filas modificadas.
type SerialTextRewriter interface {
	RewriteSerialNo(ctx context.Context, oldSerialNo, newSerialNo string) (int, error)
}
