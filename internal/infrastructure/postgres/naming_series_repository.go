package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
)

var _ repository.NamingSeriesRepository = (*NamingSeriesRepo)(nil)

// NamingSeriesRepo contadores de series de numeración sobre PostgreSQL.
type NamingSeriesRepo struct {
	q Querier
}

func NewNamingSeriesRepository(q Querier) *NamingSeriesRepo {
	return &NamingSeriesRepo{q: q}
}

// NextValue incrementa el contador del prefijo de forma atómica (la fila queda bloqueada hasta el commit).
func (r *NamingSeriesRepo) NextValue(ctx context.Context, prefix string) (int64, error) {
	var current int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO naming_series (prefix, current) VALUES ($1, 1)
		ON CONFLICT (prefix) DO UPDATE SET current = naming_series.current + 1
		RETURNING current`, prefix).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("next naming series value: %w", err)
	}
	return current, nil
}
