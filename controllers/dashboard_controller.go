package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ieadaj/church-orders-api/config"
	"github.com/ieadaj/church-orders-api/models"
)

// groupCount is a scan target for GROUP BY count queries
type groupCount struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

// GetDashboard handles GET /api/v1/dashboard - returns the summary numbers
// shown on the admin dashboard. Everything is computed at call time, nothing
// is cached.
func GetDashboard(c *gin.Context) {
	db := config.GetDB()

	var totalOrders, pendingOrders, deliveredOrders int64
	if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		dashboardQueryFailed(c)
		return
	}
	if err := db.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders).Error; err != nil {
		dashboardQueryFailed(c)
		return
	}
	if err := db.Model(&models.Order{}).Where("status = ?", models.StatusDelivered).Count(&deliveredOrders).Error; err != nil {
		dashboardQueryFailed(c)
		return
	}

	var totalPieces int64
	if err := db.Model(&models.Order{}).Select("COALESCE(SUM(quantity), 0)").Scan(&totalPieces).Error; err != nil {
		dashboardQueryFailed(c)
		return
	}

	statusCounts, err := countGroupedBy(c, "status")
	if err != nil {
		return
	}
	sizeCounts, err := countGroupedBy(c, "size")
	if err != nil {
		return
	}

	var recentOrders []models.Order
	if err := db.Order("created_at DESC, id DESC").Limit(10).Find(&recentOrders).Error; err != nil {
		dashboardQueryFailed(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_orders":     totalOrders,
			"pending_orders":   pendingOrders,
			"delivered_orders": deliveredOrders,
			"total_pieces":     totalPieces,
			"status_counts":    statusCounts,
			"size_counts":      sizeCounts,
			"recent_orders":    recentOrders,
		},
	})
}

// countGroupedBy counts orders grouped by the given column. On failure it
// writes the error envelope and returns a non-nil error so the handler can
// bail out.
func countGroupedBy(c *gin.Context, column string) (map[string]int64, error) {
	db := config.GetDB()

	var rows []groupCount
	err := db.Model(&models.Order{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		dashboardQueryFailed(c)
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// dashboardQueryFailed writes the standard error envelope for dashboard lookups
func dashboardQueryFailed(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Falha ao calcular os totais do painel",
		},
	})
}
