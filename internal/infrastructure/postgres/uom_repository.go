package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.UOMRepository = (*UOMRepo)(nil)

// UOMRepo lectura de unidades de medida.
type UOMRepo struct {
	q Querier
}

func NewUOMRepository(q Querier) *UOMRepo {
	return &UOMRepo{q: q}
}

// GetByName obtiene la UOM; nil, nil si no existe.
func (r *UOMRepo) GetByName(ctx context.Context, name string) (*entity.UOM, error) {
	var u entity.UOM
	err := r.q.QueryRow(ctx, `SELECT name, must_be_whole_number FROM uoms WHERE name = $1`, name).
		Scan(&u.Name, &u.MustBeWholeNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get uom: %w", err)
	}
	return &u, nil
}

// Upsert registra o actualiza una unidad de medida.
func (r *UOMRepo) Upsert(ctx context.Context, u *entity.UOM) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO uoms (name, must_be_whole_number) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET must_be_whole_number = EXCLUDED.must_be_whole_number`,
		u.Name, u.MustBeWholeNumber)
	if err != nil {
		return fmt.Errorf("upsert uom: %w", err)
	}
	return nil
}
