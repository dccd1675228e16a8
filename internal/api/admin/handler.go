package admin

import (
	"net/http"

	"marketplace-admin/database"
	"marketplace-admin/internal/domain/subscriptions"
	"marketplace-admin/internal/domain/users"
	"marketplace-admin/internal/domain/vendors"

	"github.com/gin-gonic/gin"
)

type AdminStats struct {
	TotalUsers          int64            `json:"total_users"`
	TotalVendors        int64            `json:"total_vendors"`
	VendorsByStatus     map[string]int64 `json:"vendors_by_status"`
	ActiveSubscriptions int64            `json:"active_subscriptions"`
	ActiveRevenue       float64          `json:"active_revenue"`
}

// GET /admin/dashboard
func Dashboard(c *gin.Context) {
	var stats AdminStats

	if err := database.DB.Model(&users.User{}).Count(&stats.TotalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	database.DB.Model(&vendors.VendorProfile{}).Count(&stats.TotalVendors)

	stats.VendorsByStatus = map[string]int64{}
	var rows []struct {
		VerificationStatus string
		Count              int64
	}
	database.DB.Model(&vendors.VendorProfile{}).
		Select("verification_status, count(*) as count").
		Group("verification_status").
		Scan(&rows)
	for _, row := range rows {
		stats.VendorsByStatus[row.VerificationStatus] = row.Count
	}

	liveStatuses := []subscriptions.Status{subscriptions.StatusActive, subscriptions.StatusTrialing}
	database.DB.Model(&subscriptions.UserSubscription{}).
		Where("status IN ?", liveStatuses).
		Count(&stats.ActiveSubscriptions)
	database.DB.Model(&subscriptions.UserSubscription{}).
		Where("status IN ?", liveStatuses).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.ActiveRevenue)

	c.JSON(http.StatusOK, stats)
}
