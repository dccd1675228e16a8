package plans

import (
	"net/http"
	"strings"

	"marketplace-admin/database"
	"marketplace-admin/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var sortColumns = map[string]string{
	"name":      "name",
	"price":     "price",
	"createdAt": "created_at",
	"sortOrder": "sort_order",
}

// GET /subscriptions
func ListPlans(c *gin.Context) {
	column, ok := sortColumns[c.DefaultQuery("sortBy", "sortOrder")]
	if !ok {
		column = "sort_order"
	}
	direction := "asc"
	if c.DefaultQuery("sortOrder", "asc") == "desc" {
		direction = "desc"
	}

	q := database.DB.Order(column + " " + direction)
	if isActive := c.Query("isActive"); isActive != "" {
		q = q.Where("is_active = ?", isActive == "true")
	}

	var list []plans.Plan
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
		return
	}

	c.JSON(http.StatusOK, list)
}

type planInput struct {
	Name                 string   `json:"name" binding:"required"`
	Slug                 string   `json:"slug"`
	Description          *string  `json:"description"`
	Price                float64  `json:"price" binding:"required"`
	Currency             string   `json:"currency"`
	BillingCycle         string   `json:"billing_cycle"`
	BillingIntervalCount int      `json:"billing_interval_count"`
	TrialDays            int      `json:"trial_days"`
	DurationDays         *int     `json:"duration_days"`
	ExpiresAfterDays     *int     `json:"expires_after_days"`
	Features             []string `json:"features"`
	MaxUsers             *int     `json:"max_users"`
	MaxOrders            *int     `json:"max_orders"`
	MaxProducts          *int     `json:"max_products"`
	DiscountPercentage   float64  `json:"discount_percentage"`
	ComparePrice         *float64 `json:"compare_price"`
	IsActive             *bool    `json:"is_active"`
	IsFeatured           bool     `json:"is_featured"`
	IsPopular            bool     `json:"is_popular"`
	SortOrder            int      `json:"sort_order"`
	Color                *string  `json:"color"`
	Icon                 *string  `json:"icon"`
	Badge                *string  `json:"badge"`
	Image                *string  `json:"image"`
}

// POST /subscriptions
func CreatePlan(c *gin.Context) {
	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = plans.Slugify(input.Name)
	}

	cycle := input.BillingCycle
	if cycle == "" {
		cycle = plans.CycleMonthly
	}
	if !plans.IsValidCycle(cycle) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid billing cycle"})
		return
	}

	intervalCount := input.BillingIntervalCount
	if intervalCount == 0 {
		intervalCount = 1
	}
	if intervalCount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Billing interval count must be at least 1"})
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "PKR"
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	plan := plans.Plan{
		ID:                   uuid.NewString(),
		Name:                 input.Name,
		Slug:                 slug,
		Description:          input.Description,
		Price:                input.Price,
		Currency:             currency,
		BillingCycle:         cycle,
		BillingIntervalCount: intervalCount,
		TrialDays:            input.TrialDays,
		DurationDays:         input.DurationDays,
		ExpiresAfterDays:     input.ExpiresAfterDays,
		Features:             input.Features,
		MaxUsers:             input.MaxUsers,
		MaxOrders:            input.MaxOrders,
		MaxProducts:          input.MaxProducts,
		DiscountPercentage:   input.DiscountPercentage,
		ComparePrice:         input.ComparePrice,
		IsActive:             isActive,
		IsFeatured:           input.IsFeatured,
		IsPopular:            input.IsPopular,
		SortOrder:            input.SortOrder,
		Color:                input.Color,
		Icon:                 input.Icon,
		Badge:                input.Badge,
		Image:                input.Image,
	}

	if err := database.DB.Create(&plan).Error; err != nil {
		if strings.Contains(err.Error(), "idx_plans_slug") || strings.Contains(err.Error(), "duplicate") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A subscription with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GET /subscriptions/:id
func GetPlan(c *gin.Context) {
	var plan plans.Plan
	if err := database.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

type planPatch struct {
	Name                 *string   `json:"name"`
	Slug                 *string   `json:"slug"`
	Description          *string   `json:"description"`
	Price                *float64  `json:"price"`
	Currency             *string   `json:"currency"`
	BillingCycle         *string   `json:"billing_cycle"`
	BillingIntervalCount *int      `json:"billing_interval_count"`
	TrialDays            *int      `json:"trial_days"`
	DurationDays         *int      `json:"duration_days"`
	ExpiresAfterDays     *int      `json:"expires_after_days"`
	Features             *[]string `json:"features"`
	MaxUsers             *int      `json:"max_users"`
	MaxOrders            *int      `json:"max_orders"`
	MaxProducts          *int      `json:"max_products"`
	DiscountPercentage   *float64  `json:"discount_percentage"`
	ComparePrice         *float64  `json:"compare_price"`
	IsActive             *bool     `json:"is_active"`
	IsFeatured           *bool     `json:"is_featured"`
	IsPopular            *bool     `json:"is_popular"`
	SortOrder            *int      `json:"sort_order"`
	Color                *string   `json:"color"`
	Icon                 *string   `json:"icon"`
	Badge                *string   `json:"badge"`
	Image                *string   `json:"image"`
}

// PUT /subscriptions/:id
func UpdatePlan(c *gin.Context) {
	var plan plans.Plan
	if err := database.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	var patch planPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if patch.BillingCycle != nil && !plans.IsValidCycle(*patch.BillingCycle) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid billing cycle"})
		return
	}
	if patch.BillingIntervalCount != nil && *patch.BillingIntervalCount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Billing interval count must be at least 1"})
		return
	}

	applyPlanPatch(&plan, patch)

	if err := database.DB.Save(&plan).Error; err != nil {
		if strings.Contains(err.Error(), "idx_plans_slug") || strings.Contains(err.Error(), "duplicate") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A subscription with this slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func applyPlanPatch(plan *plans.Plan, patch planPatch) {
	if patch.Name != nil {
		plan.Name = *patch.Name
	}
	if patch.Slug != nil {
		plan.Slug = *patch.Slug
	}
	if patch.Description != nil {
		plan.Description = patch.Description
	}
	if patch.Price != nil {
		plan.Price = *patch.Price
	}
	if patch.Currency != nil {
		plan.Currency = *patch.Currency
	}
	if patch.BillingCycle != nil {
		plan.BillingCycle = *patch.BillingCycle
	}
	if patch.BillingIntervalCount != nil {
		plan.BillingIntervalCount = *patch.BillingIntervalCount
	}
	if patch.TrialDays != nil {
		plan.TrialDays = *patch.TrialDays
	}
	if patch.DurationDays != nil {
		plan.DurationDays = patch.DurationDays
	}
	if patch.ExpiresAfterDays != nil {
		plan.ExpiresAfterDays = patch.ExpiresAfterDays
	}
	if patch.Features != nil {
		plan.Features = *patch.Features
	}
	if patch.MaxUsers != nil {
		plan.MaxUsers = patch.MaxUsers
	}
	if patch.MaxOrders != nil {
		plan.MaxOrders = patch.MaxOrders
	}
	if patch.MaxProducts != nil {
		plan.MaxProducts = patch.MaxProducts
	}
	if patch.DiscountPercentage != nil {
		plan.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.ComparePrice != nil {
		plan.ComparePrice = patch.ComparePrice
	}
	if patch.IsActive != nil {
		plan.IsActive = *patch.IsActive
	}
	if patch.IsFeatured != nil {
		plan.IsFeatured = *patch.IsFeatured
	}
	if patch.IsPopular != nil {
		plan.IsPopular = *patch.IsPopular
	}
	if patch.SortOrder != nil {
		plan.SortOrder = *patch.SortOrder
	}
	if patch.Color != nil {
		plan.Color = patch.Color
	}
	if patch.Icon != nil {
		plan.Icon = patch.Icon
	}
	if patch.Badge != nil {
		plan.Badge = patch.Badge
	}
	if patch.Image != nil {
		plan.Image = patch.Image
	}
}

// DELETE /subscriptions/:id
func DeletePlan(c *gin.Context) {
	var plan plans.Plan
	if err := database.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	if err := database.DB.Delete(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}
