package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, time.Hour), mr
}

func TestLoadMissingRecordReturnsEmptyCart(t *testing.T) {
	store, _ := newTestStore(t)

	c, err := store.Load(context.Background(), "cart-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	c := New()
	c.AddItem(sampleProduct(), 2, "p1")
	c.AddItem(sampleProduct(), 1, "")

	require.NoError(t, store.Save(ctx, "cart-1", c))

	loaded, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, c.Items, loaded.Items)

	// Reloading already-valid data must be idempotent.
	require.NoError(t, store.Save(ctx, "cart-1", loaded))
	again, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, loaded.Items, again.Items)
}

func TestLoadDiscardsCorruptPayloads(t *testing.T) {
	corrupt := []string{
		`{"not":"a list"}`,
		`"just a string"`,
		`42`,
		`not json at all`,
		`[1, 2, 3]`,
		`[{"id":"ok"}, "rogue element"]`,
	}

	for _, payload := range corrupt {
		store, mr := newTestStore(t)
		ctx := context.Background()

		mr.Set("cart:cart-1", payload)

		c, err := store.Load(ctx, "cart-1")
		require.NoError(t, err, "payload %q", payload)
		assert.Empty(t, c.Items, "payload %q", payload)

		// The corrupt record is removed, not partially adopted.
		assert.False(t, mr.Exists("cart:cart-1"), "payload %q", payload)
	}
}

func TestLoadMigratesMissingAndMistypedFields(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set("cart:cart-1", `[{"id":"prod-1","price":"not a number","packages":"nope"}]`)

	c, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)

	it := c.Items[0]
	assert.Equal(t, "prod-1", it.ID)
	assert.Equal(t, "", it.Name)
	assert.Equal(t, 0.0, it.Price)
	assert.Equal(t, 1, it.Quantity) // quantity defaults to 1, not 0
	assert.Equal(t, []Package{}, it.Packages)
	assert.Equal(t, 0.0, it.TotalPrice)
}

func TestClearRemovesRecord(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	c := New()
	c.AddItem(sampleProduct(), 1, "p1")
	require.NoError(t, store.Save(ctx, "cart-1", c))
	require.True(t, mr.Exists("cart:cart-1"))

	require.NoError(t, store.Clear(ctx, "cart-1"))
	assert.False(t, mr.Exists("cart:cart-1"))
}
