package routes

import (
	"github.com/gin-gonic/gin"

	paymentControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/payment"
	"github.com/daraghmehsaleh9-dot/Saleh/middleware"
)

// SetupPaymentRoutes registers checkout and the payment gateway endpoints.
// The success/failure callbacks stay public: the gateway redirects the
// shopper's browser there without a session.
func SetupPaymentRoutes(r *gin.Engine, d Deps) {
	checkout := r.Group("/checkout")
	checkout.Use(middleware.ValidateToken)
	{
		checkout.POST("/", paymentControllers.CheckoutHandler(d.DB, d.BuyNow, d.Gateway, d.I18n)) // POST /checkout
		checkout.PUT("/buy-now", paymentControllers.SetBuyNowHandler(d.DB, d.BuyNow))             // PUT /checkout/buy-now
		checkout.DELETE("/buy-now", paymentControllers.ClearBuyNowHandler(d.BuyNow))              // DELETE /checkout/buy-now
	}

	payment := r.Group("/payment")
	{
		payment.POST("/intent", middleware.ValidateToken, paymentControllers.CreateIntentHandler(d.Gateway)) // POST /payment/intent

		payment.GET("/success", paymentControllers.PaymentSuccessHandler(d.DB, d.BuyNow, d.Events, d.I18n)) // GET /payment/success?orderId=
		payment.GET("/failure", paymentControllers.PaymentFailureHandler(d.DB, d.I18n))                     // GET /payment/failure?orderId=
	}
}
