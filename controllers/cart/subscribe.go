package cartControllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/auth"
	"github.com/daraghmehsaleh9-dot/Saleh/cache"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /cart/ws?token=...
//
// Live subscription to the caller's cart document: the current snapshot is
// sent on connect, then every persisted state as it lands. The server never
// diffs; clients overwrite local state with whatever arrives, which is how the
// optimistic-update window gets reconciled.
func CartSubscriptionHandler(db *gorm.DB, events *cache.CartEvents) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			tokenString = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		sc, err := auth.ParseSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		snapshots, unsubscribe := events.Subscribe(ctx, sc.UserID)
		defer unsubscribe()

		if items, _, err := loadItems(db, sc.UserID); err == nil {
			if items == nil {
				items = []models.CartItem{}
			}
			if err := conn.WriteJSON(items); err != nil {
				return
			}
		}

		// Drain the read side so client closes tear the stream down.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		for {
			select {
			case items, ok := <-snapshots:
				if !ok {
					return
				}
				if err := conn.WriteJSON(items); err != nil {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}
