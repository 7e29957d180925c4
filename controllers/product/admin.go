package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

type ProductInput struct {
	EName         string  `json:"e_name" binding:"required"`
	ARName        string  `json:"ar_name"`
	ECategory     string  `json:"e_category"`
	ARCategory    string  `json:"ar_category"`
	EDescription  string  `json:"e_description"`
	ARDescription string  `json:"ar_description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	ImageURL      string  `json:"image_url"`
	Featured      bool    `json:"featured"`
}

// CreateProduct adds a product to the catalog (admin only).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			EName:         input.EName,
			ARName:        input.ARName,
			ECategory:     input.ECategory,
			ARCategory:    input.ARCategory,
			EDescription:  input.EDescription,
			ARDescription: input.ARDescription,
			Price:         input.Price,
			ImageURL:      input.ImageURL,
			Featured:      input.Featured,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct replaces the editable fields of an existing product.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]any{
			"e_name":         input.EName,
			"ar_name":        input.ARName,
			"e_category":     input.ECategory,
			"ar_category":    input.ARCategory,
			"e_description":  input.EDescription,
			"ar_description": input.ARDescription,
			"price":          input.Price,
			"image_url":      input.ImageURL,
			"featured":       input.Featured,
		}
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deletes a product. Existing cart and order rows keep
// their snapshot copies, so history stays intact.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
