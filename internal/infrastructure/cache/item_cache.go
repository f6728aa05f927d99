package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

var _ repository.ItemRepository = (*ItemCache)(nil)

// ItemCache decorador read-through del maestro de artículos sobre Redis.
// Si Redis falla se lee directo del repositorio; la caché nunca bloquea una operación.
type ItemCache struct {
	inner  repository.ItemRepository
	client redis.Cmdable
	ttl    time.Duration
	log    *logger.Logger
}

// NewItemCache construye el decorador. ttl <= 0 usa 5 minutos.
func NewItemCache(inner repository.ItemRepository, client redis.Cmdable, ttl time.Duration, log *logger.Logger) *ItemCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ItemCache{inner: inner, client: client, ttl: ttl, log: log}
}

func itemKey(code string) string {
	return fmt.Sprintf("item:%s", code)
}

// GetByCode busca primero en Redis; en fallo o ausencia consulta el repositorio y guarda el resultado.
func (c *ItemCache) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	data, err := c.client.Get(ctx, itemKey(code)).Bytes()
	switch {
	case err == nil:
		var it entity.Item
		if err := json.Unmarshal(data, &it); err == nil {
			return &it, nil
		}
		c.log.Warn().Str("item", code).Msg("entrada de caché corrupta, se descarta")
		_ = c.client.Del(ctx, itemKey(code)).Err()
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("item", code).Msg("lectura de caché de artículos")
	}

	it, err := c.inner.GetByCode(ctx, code)
	if err != nil || it == nil {
		return it, err
	}
	if data, err := json.Marshal(it); err == nil {
		if err := c.client.Set(ctx, itemKey(code), data, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("item", code).Msg("escritura de caché de artículos")
		}
	}
	return it, nil
}

// UpdateStockUOM delega en el repositorio y descarta la entrada cacheada.
func (c *ItemCache) UpdateStockUOM(ctx context.Context, code, uom string) error {
	if err := c.inner.UpdateStockUOM(ctx, code, uom); err != nil {
		return err
	}
	c.Forget(ctx, code)
	return nil
}

// Forget elimina el artículo de la caché.
func (c *ItemCache) Forget(ctx context.Context, code string) {
	if err := c.client.Del(ctx, itemKey(code)).Err(); err != nil {
		c.log.Warn().Err(err).Str("item", code).Msg("invalidación de caché de artículos")
	}
}
