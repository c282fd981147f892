package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/verdano-shop/storefront-api/models"
)

type MonthlyOrderStats struct {
	Month           string `json:"month"`
	Year            int    `json:"year"`
	TotalOrders     int    `json:"total_orders"`
	DeliveredOrders int    `json:"delivered_orders"`
	PendingOrders   int    `json:"pending_orders"`
}

// GetMonthlyOrderStats buckets the last 12 calendar months of orders into
// total/delivered/pending counts for the admin chart.
//
// GET /admin/stats/monthly-orders
func GetMonthlyOrderStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		// First day of the month 11 months back, so the window spans 12
		// whole months including the current one.
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
			AddDate(0, -11, 0)

		var orders []models.Order
		if err := db.Select("created_at", "status").
			Where("created_at >= ? AND created_at <= ?", start, now).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
			return
		}

		stats := make([]MonthlyOrderStats, 12)
		for i := range stats {
			month := start.AddDate(0, i, 0)
			stats[i].Month = month.Format("Jan")
			stats[i].Year = month.Year()
		}

		for _, order := range orders {
			idx := (order.CreatedAt.Year()-start.Year())*12 +
				int(order.CreatedAt.Month()) - int(start.Month())
			if idx < 0 || idx >= 12 {
				continue
			}
			stats[idx].TotalOrders++
			if order.Status == models.OrderStatusDelivered {
				stats[idx].DeliveredOrders++
			}
		}
		for i := range stats {
			stats[i].PendingOrders = stats[i].TotalOrders - stats[i].DeliveredOrders
		}

		c.JSON(http.StatusOK, stats)
	}
}
