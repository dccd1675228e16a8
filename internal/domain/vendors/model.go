package vendors

import (
	"time"

	"marketplace-admin/internal/domain/users"
)

// Verification statuses
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

type VendorProfile struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID *string `gorm:"type:uuid;uniqueIndex:idx_vendor_profiles_user_id" json:"user_id,omitempty"`

	User *users.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CompanyName               string  `gorm:"not null" json:"company_name"`
	CompanyLegalName          *string `json:"company_legal_name,omitempty"`
	CompanyRegistrationNumber *string `json:"company_registration_number,omitempty"`
	TaxID                     *string `json:"tax_id,omitempty"`

	BusinessType      *string `json:"business_type,omitempty"`
	IndustryCategory  *string `json:"industry_category,omitempty"`
	YearEstablished   *int    `json:"year_established,omitempty"`
	NumberOfEmployees *string `json:"number_of_employees,omitempty"`

	CompanyEmail   string  `gorm:"not null" json:"company_email"`
	CompanyPhone   *string `json:"company_phone,omitempty"`
	CompanyWebsite *string `json:"company_website,omitempty"`

	BusinessAddress    *string `json:"business_address,omitempty"`
	BusinessCity       *string `json:"business_city,omitempty"`
	BusinessState      *string `json:"business_state,omitempty"`
	BusinessPostalCode *string `json:"business_postal_code,omitempty"`
	BusinessCountry    string  `gorm:"not null;default:'Pakistan'" json:"business_country"`

	BankName          *string `json:"bank_name,omitempty"`
	BankAccountTitle  *string `json:"bank_account_title,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`

	Logo *string `json:"logo,omitempty"`

	VerificationStatus string  `gorm:"type:varchar(20);not null;default:'pending'" json:"verification_status"`
	IsActive           bool    `gorm:"not null;default:false" json:"is_active"`
	IsFeatured         bool    `gorm:"not null;default:false" json:"is_featured"`
	Rating             float64 `gorm:"not null;default:0" json:"rating"`
	TotalProducts      int     `gorm:"not null;default:0" json:"total_products"`
	TotalSales         int     `gorm:"not null;default:0" json:"total_sales"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
