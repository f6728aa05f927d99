package repository

import "context"

// NamingSeriesRepository mantiene los contadores de series de numeración.
type NamingSeriesRepository interface {
	// NextValue incrementa y devuelve el contador del prefijo (el primero es 1).
	NextValue(ctx context.Context, prefix string) (int64, error)
}
