package users

import "time"

// LoginToken is a short-lived one-time code for OTP sign-in.
type LoginToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null;index"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Code      string `gorm:"not null;index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
