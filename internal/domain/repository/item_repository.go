package repository

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// ItemRepository define el puerto de lectura del maestro de artículos.
type ItemRepository interface {
	// GetByCode devuelve nil, nil si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
	UpdateStockUOM(ctx context.Context, code, uom string) error
}
