package subscriptions

import "time"

// UserSubscription is one user's instance of a plan. The plan fields are
// snapshots copied at assignment time; later plan edits never flow through.
type UserSubscription struct {
	ID      string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  string  `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID  string  `gorm:"type:uuid;not null" json:"plan_id"`
	OrderID *string `json:"order_id,omitempty"`

	PlanName             string  `gorm:"not null" json:"plan_name"`
	Price                float64 `gorm:"not null" json:"price"`
	Currency             string  `gorm:"type:varchar(8);not null;default:'PKR'" json:"currency"`
	BillingCycle         string  `gorm:"type:varchar(16);not null" json:"billing_cycle"`
	BillingIntervalCount int     `gorm:"not null;default:1" json:"billing_interval_count"`

	Status Status `gorm:"type:varchar(16);not null" json:"status"`

	StartDate       time.Time  `gorm:"not null" json:"start_date"`
	TrialEndsAt     *time.Time `json:"trial_ends_at,omitempty"`
	ExpiryDate      *time.Time `json:"expiry_date,omitempty"`
	NextBillingDate *time.Time `json:"next_billing_date,omitempty"`
	LastBillingDate *time.Time `json:"last_billing_date,omitempty"`

	AutoRenew   bool `gorm:"not null;default:true" json:"auto_renew"`
	IsTrialUsed bool `gorm:"not null;default:false" json:"is_trial_used"`

	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
	Notes        *string    `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
