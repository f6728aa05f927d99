package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/Stock-ledger-api/internal/infrastructure/cache"
	"github.com/jhoicas/Stock-ledger-api/pkg/logger"
)

// fakeRedis implementa solo Get/Set/Del; el resto de redis.Cmdable queda sin implementar.
type fakeRedis struct {
	redis.Cmdable
	data map[string]string
	down bool
}

func newFakeRedis() *fakeRedis { return &fakeRedis{data: map[string]string{}} }

var errDown = errors.New("redis caído")

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.down {
		return redis.NewStringResult("", errDown)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	if f.down {
		return redis.NewStatusResult("", errDown)
	}
	f.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.down {
		return redis.NewIntResult(0, errDown)
	}
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type countingItems struct {
	items map[string]*entity.Item
	calls int
}

func (r *countingItems) GetByCode(_ context.Context, code string) (*entity.Item, error) {
	r.calls++
	it, ok := r.items[code]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *countingItems) UpdateStockUOM(_ context.Context, code, uom string) error {
	r.items[code].StockUOM = uom
	return nil
}

func newRepo() *countingItems {
	return &countingItems{items: map[string]*entity.Item{
		"WIDGET": {Code: "WIDGET", Name: "Widget", StockUOM: "Nos", HasSerialNo: true, SerialNoSeries: "SN-.####"},
	}}
}

func TestItemCache_ReadThrough(t *testing.T) {
	repo, rdb := newRepo(), newFakeRedis()
	c := cache.NewItemCache(repo, rdb, time.Minute, logger.Nop())
	ctx := context.Background()

	first, err := c.GetByCode(ctx, "WIDGET")
	require.NoError(t, err)
	second, err := c.GetByCode(ctx, "WIDGET")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "SN-.####", second.SerialNoSeries)
}

func TestItemCache_NoCacheaInexistentes(t *testing.T) {
	repo, rdb := newRepo(), newFakeRedis()
	c := cache.NewItemCache(repo, rdb, 0, logger.Nop())

	it, err := c.GetByCode(context.Background(), "NADA")
	require.NoError(t, err)
	assert.Nil(t, it)
	assert.Empty(t, rdb.data)
}

func TestItemCache_UpdateStockUOMInvalida(t *testing.T) {
	repo, rdb := newRepo(), newFakeRedis()
	c := cache.NewItemCache(repo, rdb, time.Minute, logger.Nop())
	ctx := context.Background()

	_, err := c.GetByCode(ctx, "WIDGET")
	require.NoError(t, err)
	require.NoError(t, c.UpdateStockUOM(ctx, "WIDGET", "Caja"))

	it, err := c.GetByCode(ctx, "WIDGET")
	require.NoError(t, err)
	assert.Equal(t, "Caja", it.StockUOM)
	assert.Equal(t, 2, repo.calls)
}

func TestItemCache_RedisCaidoUsaRepositorio(t *testing.T) {
	repo, rdb := newRepo(), newFakeRedis()
	rdb.down = true
	c := cache.NewItemCache(repo, rdb, time.Minute, logger.Nop())

	it, err := c.GetByCode(context.Background(), "WIDGET")
	require.NoError(t, err)
	assert.Equal(t, "Widget", it.Name)
	c.Forget(context.Background(), "WIDGET")
}

func TestItemCache_EntradaCorrupta(t *testing.T) {
	repo, rdb := newRepo(), newFakeRedis()
	rdb.data["item:WIDGET"] = "{no es json"
	c := cache.NewItemCache(repo, rdb, time.Minute, logger.Nop())

	it, err := c.GetByCode(context.Background(), "WIDGET")
	require.NoError(t, err)
	assert.Equal(t, "Widget", it.Name)
	assert.Equal(t, 1, repo.calls)
}
