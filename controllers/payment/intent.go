package paymentControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The callable-function envelope: requests arrive as {"data": {...}} and
// successful responses leave as {"result": {"data": {...}}}. Failures use an
// error envelope with an opaque message so gateway details never leak.

type callableCustomer struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type callableIntentData struct {
	TotalPrice float64          `json:"totalPrice"`
	SuccessURL string           `json:"successUrl"`
	FailureURL string           `json:"failureUrl"`
	Customer   callableCustomer `json:"customer"`
	Metadata   struct {
		OrderID string `json:"orderId"`
	} `json:"metadata"`
}

type callableIntentRequest struct {
	Data callableIntentData `json:"data"`
}

func callableError(c *gin.Context, code int, status, message string) {
	c.JSON(code, gin.H{"error": gin.H{"status": status, "message": message}})
}

// POST /payment/intent (authenticated, callable envelope)
func CreateIntentHandler(gateway *Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req callableIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			callableError(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Required data is missing.")
			return
		}
		data := req.Data
		if data.TotalPrice <= 0 || data.SuccessURL == "" || data.Customer.Email == "" {
			callableError(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Required data is missing.")
			return
		}

		redirectURL, err := gateway.CreatePaymentIntent(c.Request.Context(), IntentRequest{
			TotalPrice:    data.TotalPrice,
			SuccessURL:    data.SuccessURL,
			FailureURL:    data.FailureURL,
			OrderID:       data.Metadata.OrderID,
			UserID:        c.GetString("user_id"),
			CustomerEmail: data.Customer.Email,
		})
		if err != nil {
			// Opaque on purpose: the caller only learns that the intent failed.
			log.Printf("❌ Ziina payment intent failed: %v", err)
			callableError(c, http.StatusInternalServerError, "INTERNAL",
				"Failed to create payment intent with Ziina.")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"result": gin.H{"data": gin.H{"redirectUrl": redirectURL}},
		})
	}
}
