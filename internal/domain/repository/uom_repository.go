package repository

import (
	"context"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
)

// UOMRepository define el puerto de lectura de unidades de medida.
type UOMRepository interface {
	GetByName(ctx context.Context, name string) (*entity.UOM, error)
}
