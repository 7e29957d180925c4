package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// GetProducts lists the catalog. Supports ?category=, ?featured=true and
// ?search= over both language name/description columns.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("created_at desc")

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			query = query.Where("e_category = ? OR ar_category = ?", category, category)
		}
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"e_name ILIKE ? OR ar_name ILIKE ? OR e_description ILIKE ? OR ar_description ILIKE ?",
				like, like, like, like)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories lists the distinct category pairs present in the catalog.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		type categoryPair struct {
			ECategory  string `json:"e_category"`
			ARCategory string `json:"ar_category"`
		}
		var categories []categoryPair
		if err := db.Model(&models.Product{}).
			Distinct("e_category", "ar_category").
			Where("e_category <> ''").
			Scan(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
