package cartControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/cache"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		items, _, err := loadItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respondCart(c, items)
	}
}

// POST /cart/items
func AddItem(db *gorm.DB, events *cache.CartEvents) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		items, _, err := loadItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		items = applyAdd(items, models.ItemFromProduct(product, input.Quantity))

		if err := persistCart(c, db, events, userID, items); err != nil {
			return
		}
		respondCart(c, items)
	}
}

// PUT /cart/items/:product_id
func UpdateItemQuantity(db *gorm.DB, events *cache.CartEvents) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		items, _, err := loadItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		items = applyQuantity(items, uint(productID), input.Quantity)

		if err := persistCart(c, db, events, userID, items); err != nil {
			return
		}
		respondCart(c, items)
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(db *gorm.DB, events *cache.CartEvents) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		items, _, err := loadItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		updated := applyRemove(items, uint(productID))
		if len(updated) == len(items) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		if err := persistCart(c, db, events, userID, updated); err != nil {
			return
		}
		respondCart(c, updated)
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB, events *cache.CartEvents) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if err := persistCart(c, db, events, userID, nil); err != nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		items, _, err := loadItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respondCart(c, items)
	}
}

// loadItems fetches the user's cart items. Reads never create the document:
// a user (or a typoed admin lookup) without a cart just gets an empty one.
func loadItems(db *gorm.DB, userID string) ([]models.CartItem, *models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return cart.Items, &cart, nil
}

// ensureCart fetches the cart row for a write, creating the document on first
// write the way the original full-document set did.
func ensureCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ReplaceItems overwrites the whole cart document in one transaction. Partial
// patches are never issued; concurrent writers race with last write wins.
func ReplaceItems(db *gorm.DB, userID string, items []models.CartItem) error {
	cart, err := ensureCart(db, userID)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].CartID = cart.CartID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("updated_at", tx.NowFunc()).Error
	})
}

// Items returns the user's current cart items for other controllers, e.g. the
// checkout flow snapshotting the cart into an order.
func Items(db *gorm.DB, userID string) ([]models.CartItem, error) {
	items, _, err := loadItems(db, userID)
	return items, err
}

// ClearForUser empties a user's cart outside a cart request, e.g. after a
// successful payment callback, and notifies live subscribers.
func ClearForUser(ctx context.Context, db *gorm.DB, events *cache.CartEvents, userID string) error {
	if err := ReplaceItems(db, userID, nil); err != nil {
		return err
	}
	if events != nil {
		if err := events.Publish(ctx, userID, nil); err != nil {
			log.Printf("❌ Failed to publish cart clear for %s: %v", userID, err)
		}
	}
	return nil
}

// persistCart writes the new state and notifies subscribers. A failed publish
// is logged, not surfaced: the write already landed and the next snapshot
// reconciles listeners.
func persistCart(c *gin.Context, db *gorm.DB, events *cache.CartEvents, userID string, items []models.CartItem) error {
	if err := ReplaceItems(db, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return err
	}
	if events != nil {
		if err := events.Publish(c.Request.Context(), userID, items); err != nil {
			log.Printf("❌ Failed to publish cart update for %s: %v", userID, err)
		}
	}
	return nil
}

func respondCart(c *gin.Context, items []models.CartItem) {
	if items == nil {
		items = []models.CartItem{}
	}
	totalItems, totalPrice := totals(items)
	price, _ := totalPrice.Float64()
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_items": totalItems,
		"total_price": price,
	})
}
