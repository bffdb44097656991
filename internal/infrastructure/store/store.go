package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Storefront/internal/domain/contract"
	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

type ProductCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
}

var _ contract.IProductCache = (*ProductCacheStore)(nil)

func NewProductCacheStore(rdb *redis.Client, ttl time.Duration) *ProductCacheStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ProductCacheStore{
		rdb:       rdb,
		detailTTL: ttl,
	}
}

func productDetailKey(id string) string { return fmt.Sprintf("product:id:%s", id) }

// Each entry is a hash holding the JSON payload under "data" and the
// product's UpdatedAt in microseconds under "ver". An entry is only replaced
// by a copy at least as new.
var setIfNotOlder = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'ver')
if cur and tonumber(cur) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'ver', ARGV[1], 'data', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

// GetProduct reports found=false on a miss. A payload that no longer decodes
// is treated as a miss.
func (c *ProductCacheStore) GetProduct(ctx context.Context, id string) (*entity.Product, bool, error) {
	b, err := c.rdb.HGet(ctx, productDetailKey(id), "data").Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var product entity.Product
	if err := json.Unmarshal(b, &product); err != nil {
		return nil, false, nil
	}
	return &product, true, nil
}

// SetProduct caches product unless the cache already holds a newer copy.
func (c *ProductCacheStore) SetProduct(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	keys := []string{productDetailKey(product.ID)}
	return setIfNotOlder.Run(ctx, c.rdb, keys,
		product.UpdatedAt.UnixMicro(), string(data), c.detailTTL.Milliseconds()).Err()
}

func (c *ProductCacheStore) InvalidateProduct(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, productDetailKey(id)).Err()
}
