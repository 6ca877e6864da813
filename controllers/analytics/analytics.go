package analyticsControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PerryB-GIT/sweetmeadow-bakery/models"
)

// DashboardHandler aggregates the numbers shown on the admin home screen.
// Everything is computed at query time; nothing is cached or precomputed.
func DashboardHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		weekAgo := today.AddDate(0, 0, -7)

		var todayOrders int64
		db.Model(&models.Order{}).Where("created_at >= ?", today).Count(&todayOrders)

		var pendingOrders int64
		db.Model(&models.Order{}).
			Where("status IN ?", []models.OrderStatus{models.OrderStatusPending, models.OrderStatusConfirmed}).
			Count(&pendingOrders)

		var todayRevenue float64
		db.Model(&models.Order{}).
			Where("created_at >= ? AND status <> ?", today, models.OrderStatusCancelled).
			Select("COALESCE(SUM(total), 0)").
			Scan(&todayRevenue)

		var weekRevenue float64
		db.Model(&models.Order{}).
			Where("created_at >= ? AND status <> ?", weekAgo, models.OrderStatusCancelled).
			Select("COALESCE(SUM(total), 0)").
			Scan(&weekRevenue)

		var totalCustomers int64
		db.Model(&models.User{}).Where("role = ?", models.RoleCustomer).Count(&totalCustomers)

		var lowStockItems int64
		db.Model(&models.Inventory{}).Where("quantity <= low_stock_alert").Count(&lowStockItems)

		var recentOrders []models.Order
		if err := db.
			Preload("User").
			Order("created_at DESC").
			Limit(10).
			Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"today_orders":    todayOrders,
			"pending_orders":  pendingOrders,
			"today_revenue":   todayRevenue,
			"week_revenue":    weekRevenue,
			"total_customers": totalCustomers,
			"low_stock_items": lowStockItems,
			"recent_orders":   recentOrders,
		})
	}
}
