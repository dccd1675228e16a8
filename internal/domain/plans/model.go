package plans

import "time"

type Plan struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"not null;uniqueIndex:idx_plans_slug" json:"slug"`
	Description *string `json:"description,omitempty"`

	Price    float64 `gorm:"not null" json:"price"`
	Currency string  `gorm:"type:varchar(8);not null;default:'PKR'" json:"currency"`

	BillingCycle         string `gorm:"type:varchar(16);not null;default:'monthly'" json:"billing_cycle"`
	BillingIntervalCount int    `gorm:"not null;default:1" json:"billing_interval_count"`
	TrialDays            int    `gorm:"not null;default:0" json:"trial_days"`
	DurationDays         *int   `json:"duration_days,omitempty"`
	ExpiresAfterDays     *int   `json:"expires_after_days,omitempty"`

	Features []string `gorm:"serializer:json" json:"features,omitempty"`

	MaxUsers    *int `json:"max_users,omitempty"`
	MaxOrders   *int `json:"max_orders,omitempty"`
	MaxProducts *int `json:"max_products,omitempty"`

	DiscountPercentage float64  `gorm:"not null;default:0" json:"discount_percentage"`
	ComparePrice       *float64 `json:"compare_price,omitempty"`

	IsActive   bool `gorm:"not null;default:true" json:"is_active"`
	IsFeatured bool `gorm:"not null;default:false" json:"is_featured"`
	IsPopular  bool `gorm:"not null;default:false" json:"is_popular"`
	SortOrder  int  `gorm:"not null;default:0" json:"sort_order"`

	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Badge *string `json:"badge,omitempty"`
	Image *string `json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
