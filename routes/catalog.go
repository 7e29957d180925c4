package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/daraghmehsaleh9-dot/Saleh/controllers/product"
)

// SetupCatalogRoutes registers the public storefront browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, d Deps) {
	r.GET("/products", productControllers.GetProducts(d.DB))        // GET /products?category=&featured=&search=
	r.GET("/products/:id", productControllers.GetProductByID(d.DB)) // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(d.DB))    // GET /categories
	r.GET("/brands", productControllers.GetBrands(d.DB))            // GET /brands
}
