package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/cache"
	cartControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/cart"
	orderControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/order"
	"github.com/daraghmehsaleh9-dot/Saleh/i18n"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// The hosted payment page redirects the browser here. Both handlers are
// idempotent: re-invocation rewrites the same status. A failure callback
// landing after a success callback overwrites it; there is no compensating
// transaction for that race.

// GET /payment/success?orderId=...
func PaymentSuccessHandler(db *gorm.DB, buyNow *cache.BuyNowStore, events *cache.CartEvents, tr *i18n.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Lang(c)

		orderID, ok := orderIDFromQuery(c)
		if !ok {
			return
		}
		if !setStatus(c, db, orderID, models.OrderStatusPaid, tr, lang) {
			return
		}

		// Clear the paying user's cart and any buy-now override. Guest orders
		// have no cart document to clear.
		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			log.Printf("❌ Failed to load order %d after payment success: %v", orderID, err)
		} else if order.UserID != "" {
			if err := cartControllers.ClearForUser(c.Request.Context(), db, events, order.UserID); err != nil {
				log.Printf("❌ Failed to clear cart for %s after order %d: %v", order.UserID, orderID, err)
			}
			if buyNow != nil {
				if err := buyNow.Clear(c.Request.Context(), order.UserID); err != nil {
					log.Printf("❌ Failed to clear buy-now for %s: %v", order.UserID, err)
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  tr.T(lang, "paymentSuccess"),
			"order_id": orderID,
			"status":   models.OrderStatusPaid,
		})
	}
}

// GET /payment/failure?orderId=...
func PaymentFailureHandler(db *gorm.DB, tr *i18n.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Lang(c)

		orderID, ok := orderIDFromQuery(c)
		if !ok {
			return
		}
		if !setStatus(c, db, orderID, models.OrderStatusFailed, tr, lang) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  tr.T(lang, "paymentFailed"),
			"order_id": orderID,
			"status":   models.OrderStatusFailed,
		})
	}
}

func orderIDFromQuery(c *gin.Context) (uint, bool) {
	orderID, err := strconv.ParseUint(c.Query("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid orderId"})
		return 0, false
	}
	return uint(orderID), true
}

func setStatus(c *gin.Context, db *gorm.DB, orderID uint, status models.OrderStatus, tr *i18n.Store, lang string) bool {
	if err := orderControllers.UpdateOrderStatus(db, orderID, status); err != nil {
		if errors.Is(err, orderControllers.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": tr.T(lang, "orderNotFound")})
			return false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return false
	}
	return true
}
