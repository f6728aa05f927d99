package repository

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// BinRepository define el puerto para consultar/actualizar cantidades por bodega+artículo.
// Usado dentro de transacciones para garantizar consistencia.
type BinRepository interface {
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); si no existe devuelve un Bin en cero.
	GetForUpdate(ctx context.Context, itemCode, warehouse string) (*entity.Bin, error)
	Upsert(ctx context.Context, bin *entity.Bin) error
	ListByItem(ctx context.Context, itemCode string) ([]*entity.Bin, error)
}
