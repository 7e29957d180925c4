package paymentControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/cache"
	cartControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/cart"
	orderControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/order"
	"github.com/daraghmehsaleh9-dot/Saleh/i18n"
	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

type BuyNowInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// PUT /checkout/buy-now
//
// Stores the transient single-item override. It bypasses the persisted cart
// for exactly one checkout pass.
func SetBuyNowHandler(db *gorm.DB, buyNow *cache.BuyNowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input BuyNowInput
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

		item := models.ItemFromProduct(product, input.Quantity)
		if err := buyNow.Set(c.Request.Context(), userID, item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set buy-now item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": item})
	}
}

// DELETE /checkout/buy-now clears the override when the user leaves checkout
// without buying.
func ClearBuyNowHandler(buyNow *cache.BuyNowStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if err := buyNow.Clear(c.Request.Context(), userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear buy-now item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Buy-now item cleared"})
	}
}

type CheckoutInput struct {
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// POST /checkout (authenticated)
//
// The order of operations matters: delivery details are validated before any
// store or gateway call, the pending order is created before the gateway is
// contacted, and a gateway failure leaves that order pending.
func CheckoutHandler(db *gorm.DB, buyNow *cache.BuyNowStore, gateway *Gateway, tr *i18n.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.Lang(c)
		userID := c.GetString("user_id")

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": tr.T(lang, "deliveryFieldsRequired")})
			return
		}
		details, ok := deliveryDetails(input)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": tr.T(lang, "deliveryFieldsRequired")})
			return
		}

		items, fromBuyNow, err := checkoutItems(c, db, buyNow, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": tr.T(lang, "cartIsEmpty")})
			return
		}

		total := checkoutTotal(items)
		order, err := orderControllers.CreateOrder(db, userID, items, total, details)
		if err != nil {
			if errors.Is(err, orderControllers.ErrEmptyOrder) {
				c.JSON(http.StatusBadRequest, gin.H{"error": tr.T(lang, "emptyOrder")})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		// The override lasts exactly one checkout pass: it is consumed the
		// moment it turns into an order, whatever the gateway says next.
		if fromBuyNow {
			if err := buyNow.Clear(c.Request.Context(), userID); err != nil {
				log.Printf("❌ Failed to clear buy-now for %s: %v", userID, err)
			}
		}

		successURL, failureURL := callbackURLs(order.ID)
		redirectURL, err := gateway.CreatePaymentIntent(c.Request.Context(), IntentRequest{
			TotalPrice:    total,
			SuccessURL:    successURL,
			FailureURL:    failureURL,
			OrderID:       fmt.Sprint(order.ID),
			UserID:        userID,
			CustomerEmail: details.Email,
		})
		if err != nil {
			log.Printf("❌ Payment initiation failed for order %d: %v", order.ID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": tr.T(lang, "paymentInitFailed")})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id":     order.ID,
			"order_ref":    order.OrderRef,
			"total_price":  total,
			"redirect_url": redirectURL,
		})
	}
}

// deliveryDetails validates the caller contract: all five fields present,
// free text otherwise.
func deliveryDetails(input CheckoutInput) (models.DeliveryDetails, bool) {
	details := models.DeliveryDetails{
		FullName:    strings.TrimSpace(input.FullName),
		Address:     strings.TrimSpace(input.Address),
		City:        strings.TrimSpace(input.City),
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Email:       strings.TrimSpace(input.Email),
	}
	if details.FullName == "" || details.Address == "" || details.City == "" ||
		details.PhoneNumber == "" || details.Email == "" {
		return models.DeliveryDetails{}, false
	}
	return details, true
}

// checkoutItems resolves the buy-now override first, the cart otherwise. The
// second return reports which source was used so the caller can consume the
// override.
func checkoutItems(c *gin.Context, db *gorm.DB, buyNow *cache.BuyNowStore, userID string) ([]models.CartItem, bool, error) {
	if buyNow != nil {
		override, err := buyNow.Get(c.Request.Context(), userID)
		if err != nil {
			return nil, false, err
		}
		if override != nil {
			return []models.CartItem{*override}, true, nil
		}
	}
	items, err := cartControllers.Items(db, userID)
	return items, false, err
}

func checkoutTotal(items []models.CartItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	f, _ := total.Float64()
	return f
}

// callbackURLs embeds the order identifier so the result endpoints can find
// the order without gateway cooperation.
func callbackURLs(orderID uint) (successURL, failureURL string) {
	base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:8080"
	}
	successURL = fmt.Sprintf("%s/payment/success?orderId=%d", base, orderID)
	failureURL = fmt.Sprintf("%s/payment/failure?orderId=%d", base, orderID)
	return successURL, failureURL
}
