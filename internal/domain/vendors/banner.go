package vendors

import "time"

type Banner struct {
	ID              string `gorm:"type:uuid;primaryKey" json:"id"`
	VendorProfileID string `gorm:"type:uuid;not null;index" json:"vendor_profile_id"`
	ImageURL        string `gorm:"not null" json:"image_url"`
	SortOrder       int    `gorm:"not null;default:0" json:"sort_order"`
	IsActive        bool   `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
