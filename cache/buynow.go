package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// BuyNowStore holds the transient single-item checkout override. The item is
// never written to the cart document: it lives in Redis with a TTL, overrides
// the cart for exactly one checkout pass and is cleared when checkout is left
// or completes.
type BuyNowStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBuyNowStore(rdb *redis.Client) *BuyNowStore {
	return &BuyNowStore{rdb: rdb, ttl: time.Hour}
}

func buyNowKey(userID string) string {
	return "buynow:" + userID
}

func (s *BuyNowStore) Set(ctx context.Context, userID string, item models.CartItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, buyNowKey(userID), data, s.ttl).Err()
}

// Get returns the override item, or nil when none is set.
func (s *BuyNowStore) Get(ctx context.Context, userID string) (*models.CartItem, error) {
	data, err := s.rdb.Get(ctx, buyNowKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var item models.CartItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *BuyNowStore) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, buyNowKey(userID)).Err()
}
