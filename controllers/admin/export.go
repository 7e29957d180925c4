package adminController

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// ExportOrdersToExcel streams every order as an .xlsx download, one row per
// order with the delivery details flattened in.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "OrderRef", "UserID", "Status", "TotalPrice", "Items",
			"FullName", "Address", "City", "PhoneNumber", "Email", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			var itemCount int
			for _, item := range o.Items {
				itemCount += item.Quantity
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.UserID)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.TotalPrice)
			row.AddCell().SetValue(itemCount)
			row.AddCell().SetValue(o.DeliveryDetails.FullName)
			row.AddCell().SetValue(o.DeliveryDetails.Address)
			row.AddCell().SetValue(o.DeliveryDetails.City)
			row.AddCell().SetValue(o.DeliveryDetails.PhoneNumber)
			row.AddCell().SetValue(o.DeliveryDetails.Email)
			row.AddCell().SetValue(o.CreatedAt.Format(time.RFC3339))
		}

		fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", "attachment; filename="+fileName)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
