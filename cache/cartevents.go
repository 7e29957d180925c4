package cache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// CartEvents fans out persisted cart state to live subscribers. Every write to
// a user's cart publishes the full item list on that user's channel; the
// websocket endpoint relays it. Subscribers always receive whole snapshots so
// a reconnecting client never has to replay deltas.
type CartEvents struct {
	rdb *redis.Client
}

func NewCartEvents(rdb *redis.Client) *CartEvents {
	return &CartEvents{rdb: rdb}
}

func cartChannel(userID string) string {
	return "carts:" + userID
}

func (e *CartEvents) Publish(ctx context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return e.rdb.Publish(ctx, cartChannel(userID), data).Err()
}

// Subscribe streams cart snapshots for one user until the returned cancel
// func is called or ctx ends. Malformed payloads are logged and skipped.
func (e *CartEvents) Subscribe(ctx context.Context, userID string) (<-chan []models.CartItem, func()) {
	sub := e.rdb.Subscribe(ctx, cartChannel(userID))
	out := make(chan []models.CartItem)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var items []models.CartItem
			if err := json.Unmarshal([]byte(msg.Payload), &items); err != nil {
				log.Printf("❌ Bad cart event for user %s: %v", userID, err)
				continue
			}
			select {
			case out <- items:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}
