package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestBuyNowRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewBuyNowStore(testRedis(t))

	item := models.CartItem{ProductID: 5, EName: "Dark Bomb", Price: 15, Quantity: 2}
	require.NoError(t, store.Set(ctx, "user-1", item))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, uint(5), got.ProductID)
	require.Equal(t, 2, got.Quantity)

	// The override is per user.
	other, err := store.Get(ctx, "user-2")
	require.NoError(t, err)
	require.Nil(t, other)

	require.NoError(t, store.Clear(ctx, "user-1"))
	got, err = store.Get(ctx, "user-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCartEventsPublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb := testRedis(t)
	events := NewCartEvents(rdb)

	ch, unsubscribe := events.Subscribe(ctx, "user-1")
	defer unsubscribe()

	items := []models.CartItem{
		{ProductID: 1, EName: "Milk Bomb", Price: 12, Quantity: 1},
		{ProductID: 2, EName: "Dark Bomb", Price: 15, Quantity: 3},
	}

	// The subscriber goroutine needs a moment to register before publishing.
	require.Eventually(t, func() bool {
		require.NoError(t, events.Publish(ctx, "user-1", items))
		select {
		case got := <-ch:
			require.Len(t, got, 2)
			require.Equal(t, uint(2), got[1].ProductID)
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 50*time.Millisecond)
}
