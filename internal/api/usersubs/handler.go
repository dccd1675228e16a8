package usersubs

import (
	"errors"
	"net/http"
	"time"

	"marketplace-admin/database"
	"marketplace-admin/internal/domain/plans"
	"marketplace-admin/internal/domain/subscriptions"
	"marketplace-admin/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GET /user-subscriptions?userId=
func ListUserSubscriptions(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if userID := c.Query("userId"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var subs []subscriptions.UserSubscription
	if err := q.Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

type assignInput struct {
	UserID     string     `json:"user_id" binding:"required"`
	PlanID     string     `json:"plan_id" binding:"required"`
	OrderID    *string    `json:"order_id"`
	StartDate  *time.Time `json:"start_date"`
	AutoRenew  *bool      `json:"auto_renew"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Notes      *string    `json:"notes"`
}

// POST /user-subscriptions — assign a plan to a user.
func AssignSubscription(c *gin.Context) {
	var input assignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var plan plans.Plan
	if err := database.DB.First(&plan, "id = ?", input.PlanID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	sub, err := subscriptions.Compute(&plan, subscriptions.Assignment{
		StartDate:  input.StartDate,
		AutoRenew:  input.AutoRenew,
		ExpiryDate: input.ExpiryDate,
	}, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub.ID = uuid.NewString()
	sub.UserID = user.ID
	sub.OrderID = input.OrderID
	sub.Notes = input.Notes

	if err := database.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign subscription"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// GET /user-subscriptions/:id
func GetUserSubscription(c *gin.Context) {
	var sub subscriptions.UserSubscription
	if err := database.DB.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

type patchInput struct {
	Status               *subscriptions.Status `json:"status"`
	ExpiryDate           *time.Time            `json:"expiry_date"`
	ClearExpiryDate      bool                  `json:"clear_expiry_date"`
	NextBillingDate      *time.Time            `json:"next_billing_date"`
	ClearNextBillingDate bool                  `json:"clear_next_billing_date"`
	CancelledAt          *time.Time            `json:"cancelled_at"`
	ClearCancelledAt     bool                  `json:"clear_cancelled_at"`
	AutoRenew            *bool                 `json:"auto_renew"`
	CancelReason         *string               `json:"cancel_reason"`
	Notes                *string               `json:"notes"`
}

// PUT /user-subscriptions/:id — explicit operator edits.
func UpdateUserSubscription(c *gin.Context) {
	var sub subscriptions.UserSubscription
	if err := database.DB.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User subscription not found"})
		return
	}

	var input patchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := subscriptions.Patch{
		Status:               input.Status,
		ExpiryDate:           input.ExpiryDate,
		ClearExpiryDate:      input.ClearExpiryDate,
		NextBillingDate:      input.NextBillingDate,
		ClearNextBillingDate: input.ClearNextBillingDate,
		CancelledAt:          input.CancelledAt,
		ClearCancelledAt:     input.ClearCancelledAt,
		AutoRenew:            input.AutoRenew,
		CancelReason:         input.CancelReason,
		Notes:                input.Notes,
	}
	if err := patch.Apply(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user subscription"})
		return
	}

	c.JSON(http.StatusOK, sub)
}

// DELETE /user-subscriptions/:id — terminal removal, not a status.
func DeleteUserSubscription(c *gin.Context) {
	var sub subscriptions.UserSubscription
	if err := database.DB.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User subscription not found"})
		return
	}

	if err := database.DB.Delete(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User subscription deleted successfully"})
}

// POST /user-subscriptions/:id/tick — host-scheduled re-evaluation.
func TickUserSubscription(c *gin.Context) {
	withSubscription(c, func(sub *subscriptions.UserSubscription) error {
		subscriptions.Tick(sub, time.Now())
		return nil
	})
}

// POST /user-subscriptions/:id/cancel
func CancelUserSubscription(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)

	withSubscription(c, func(sub *subscriptions.UserSubscription) error {
		return subscriptions.Cancel(sub, body.Reason, time.Now())
	})
}

// POST /user-subscriptions/:id/cancel-immediately
func CancelUserSubscriptionImmediately(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&body)

	withSubscription(c, func(sub *subscriptions.UserSubscription) error {
		return subscriptions.CancelImmediately(sub, body.Reason, time.Now())
	})
}

// POST /user-subscriptions/:id/renewal-failed — charge collaborator signal.
func MarkRenewalFailed(c *gin.Context) {
	withSubscription(c, func(sub *subscriptions.UserSubscription) error {
		return subscriptions.MarkRenewalFailed(sub, time.Now())
	})
}

// POST /user-subscriptions/:id/billing-date
func ChangeBillingDate(c *gin.Context) {
	var body struct {
		NextBillingDate time.Time `json:"next_billing_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "next_billing_date required"})
		return
	}

	withSubscription(c, func(sub *subscriptions.UserSubscription) error {
		return subscriptions.ChangeBillingDate(sub, body.NextBillingDate)
	})
}

// withSubscription loads, mutates through the state machine, and persists.
// The host serializes concurrent mutations per id; this handler relies on
// that and performs a plain read-modify-write.
func withSubscription(c *gin.Context, op func(*subscriptions.UserSubscription) error) {
	var sub subscriptions.UserSubscription
	if err := database.DB.First(&sub, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User subscription not found"})
		return
	}

	if err := op(&sub); err != nil {
		if errors.Is(err, subscriptions.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user subscription"})
		return
	}

	c.JSON(http.StatusOK, sub)
}
