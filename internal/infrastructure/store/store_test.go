package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Storefront/internal/domain/entity"
)

func newTestStore(t *testing.T) (*ProductCacheStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewProductCacheStore(rdb, time.Minute), mr
}

func TestProductCacheStore_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)
	product := &entity.Product{ID: "p1", Name: "Name of product", Likes: []string{}, Dislikes: []string{"u1"}}

	_, found, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetProduct(ctx, product))
	assert.True(t, mr.Exists("product:id:p1"))
	assert.Equal(t, time.Minute, mr.TTL("product:id:p1"))

	cached, found, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"u1"}, cached.Dislikes)

	require.NoError(t, s.InvalidateProduct(ctx, "p1"))
	_, found, err = s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProductCacheStore_CorruptPayloadIsMiss(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)
	mr.HSet("product:id:p1", "data", "{not json")

	_, found, err := s.GetProduct(ctx, "p1")

	require.NoError(t, err)
	assert.False(t, found)
}

func TestProductCacheStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)
	require.NoError(t, s.SetProduct(ctx, &entity.Product{ID: "p1"}))

	mr.FastForward(2 * time.Minute)

	_, found, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProductCacheStore_KeepsNewerCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	loadedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	stale := &entity.Product{ID: "p1", Dislikes: []string{}, UpdatedAt: loadedAt}
	saved := &entity.Product{ID: "p1", Dislikes: []string{"u1"}, UpdatedAt: loadedAt.Add(time.Millisecond)}

	// a reader that loaded the product before the toggle finishes after it
	require.NoError(t, s.SetProduct(ctx, saved))
	require.NoError(t, s.SetProduct(ctx, stale))

	cached, found, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"u1"}, cached.Dislikes)

	undone := &entity.Product{ID: "p1", Dislikes: []string{}, UpdatedAt: loadedAt.Add(time.Second)}
	require.NoError(t, s.SetProduct(ctx, undone))

	cached, _, err = s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, cached.Dislikes)
}

func TestProductCacheStore_ServerError(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t)
	mr.Close()

	_, _, err := s.GetProduct(ctx, "p1")
	assert.Error(t, err)
}
