package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/cart"
	orderControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/order"
	userControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/user"
	"github.com/daraghmehsaleh9-dot/Saleh/middleware"
)

// SetupUserRoutes registers the "/user/*" and "/cart/*" endpoints.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	// The websocket subscription authenticates itself from the query token, so
	// it lives outside the middleware chain.
	r.GET("/cart/ws", cartControllers.CartSubscriptionHandler(d.DB, d.Events)) // GET /cart/ws?token=...

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(d.DB))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(d.DB)) // PUT /user/

		// ──────────────── Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(d.DB)) // GET /user/orders
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("/", cartControllers.GetCart(d.DB))                                       // GET /cart
		cartGroup.POST("/items", cartControllers.AddItem(d.DB, d.Events))                       // POST /cart/items
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateItemQuantity(d.DB, d.Events)) // PUT /cart/items/:product_id
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(d.DB, d.Events))      // DELETE /cart/items/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(d.DB, d.Events))                        // DELETE /cart
	}
}
