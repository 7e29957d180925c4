package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/daraghmehsaleh9-dot/Saleh/controllers/admin"
	cartControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/cart"
	orderControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/order"
	productControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/product"
	userControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/user"
	"github.com/daraghmehsaleh9-dot/Saleh/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints. Every route checks the
// admin claim server-side; the dashboard UI hiding buttons is not enough.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(d.DB))                      // GET /admin/orders
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.DB)) // PUT /admin/orders/:orderID/status
		adminGroup.GET("/orders/export", adminController.ExportOrdersToExcel(d.DB))                // GET /admin/orders/export

		// ──────────────── Users ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(d.DB))                    // GET /admin/users
		adminGroup.GET("/users/:user_id/cart", cartControllers.GetAdminUserCart(d.DB)) // GET /admin/users/:user_id/cart

		// ──────────────── Catalog ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(d.DB))       // POST /admin/products
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(d.DB))    // PUT /admin/products/:id
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(d.DB)) // DELETE /admin/products/:id
		adminGroup.POST("/brands", productControllers.UploadBrand(d.DB))           // POST /admin/brands
		adminGroup.DELETE("/brands/:id", productControllers.DeleteBrand(d.DB))     // DELETE /admin/brands/:id

		// ──────────────── Grants ────────────────
		adminGroup.GET("/grants", adminController.GetAdminGrants(d.DB)) // GET /admin/grants
	}

	// Grant provisioning is driven by ops tooling with the service API key,
	// so the very first admin can be created without an admin session.
	serviceGroup := r.Group("/service")
	serviceGroup.Use(middleware.ValidateAPIKey)
	{
		serviceGroup.POST("/admin-grants", adminController.CreateAdminGrant(d.DB, d.Auth)) // POST /service/admin-grants
		serviceGroup.DELETE("/admin-grants/:id", adminController.DeleteAdminGrant(d.DB))   // DELETE /service/admin-grants/:id
	}
}
