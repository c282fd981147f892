package orderControllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
)

// ExportOrdersToExcel streams an xlsx of orders, optionally filtered by a
// start_date/end_date range (YYYY-MM-DD, end date inclusive to end of day).
//
// GET /admin/orders/export?start_date=&end_date=
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Order{}).Preload("Items")

		if startStr := c.Query("start_date"); startStr != "" {
			start, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
				return
			}
			query = query.Where("created_at >= ?", start)
		}
		if endStr := c.Query("end_date"); endStr != "" {
			end, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
				return
			}
			query = query.Where("created_at <= ?", end.Add(24*time.Hour-time.Nanosecond))
		}

		var orders []models.Order
		if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
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
			"Order ID", "Customer Name", "Customer Email", "Customer Phone",
			"Shipping Address", "Order Date", "Total Amount", "Payment Method",
			"Status", "Items Count", "Items Details",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(order.ID)
			row.AddCell().SetValue(order.CustomerName)
			row.AddCell().SetValue(order.CustomerEmail)
			row.AddCell().SetValue(order.CustomerPhone)
			row.AddCell().SetValue(fmt.Sprintf("%s, %s, %s, %s",
				order.ShippingAddress, order.ShippingCity,
				order.ShippingPostalCode, order.ShippingCountry))
			row.AddCell().SetValue(order.CreatedAt.Format("2006-01-02"))
			row.AddCell().SetValue(order.TotalAmount)
			row.AddCell().SetValue(order.PaymentMethod)
			row.AddCell().SetValue(string(order.Status))
			row.AddCell().SetValue(len(order.Items))
			row.AddCell().SetValue(itemsDetails(order.Items))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// itemsDetails renders one order's lines as "Name (Package) x qty @ price"
// joined with semicolons, the format the admin sheet expects.
func itemsDetails(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		pkg := item.PackageName
		if pkg == "" {
			pkg = "Default"
		}
		parts = append(parts, fmt.Sprintf("%s (%s) x %d @ %.2f",
			item.ProductName, pkg, item.Quantity, item.UnitPrice))
	}
	return strings.Join(parts, "; ")
}
