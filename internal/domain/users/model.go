package users

import "time"

// User types
const (
	TypeAdmin    = "admin"
	TypeVendor   = "vendor"
	TypeCustomer = "customer"
)

// Account statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusSuspended = "suspended"
)

type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Phone *string `json:"phone,omitempty"`

	// nil for OTP-only accounts (activated vendors have no password)
	Password *string `json:"-"`

	UserType string `gorm:"type:varchar(20);not null;default:'customer'" json:"user_type"`
	Status   string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"auth_provider"`

	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`

	// set when the account was allocated by vendor activation; lets a retry
	// recognize its own prior partial attempt instead of reporting a conflict
	CreatedByActivation bool `gorm:"not null;default:false" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
