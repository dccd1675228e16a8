package vendors

import (
	"errors"
	"net/http"

	"marketplace-admin/database"
	"marketplace-admin/internal/domain/users"
	"marketplace-admin/internal/domain/vendors"
	"marketplace-admin/internal/infra/mailer"
	"marketplace-admin/internal/infra/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GET /vendors?verificationStatus=&sortOrder=
func ListVendors(c *gin.Context) {
	direction := "DESC"
	if c.DefaultQuery("sortOrder", "desc") == "asc" {
		direction = "ASC"
	}

	q := database.DB.Preload("User").Order("created_at " + direction)
	if status := c.Query("verificationStatus"); status != "" {
		q = q.Where("verification_status = ?", status)
	}

	var list []vendors.VendorProfile
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
		return
	}

	c.JSON(http.StatusOK, list)
}

type vendorInput struct {
	CompanyName               string  `json:"company_name" binding:"required"`
	Email                     string  `json:"email" binding:"required,email"`
	Password                  string  `json:"password" binding:"required"`
	Phone                     *string `json:"phone"`
	Status                    string  `json:"status"`
	CompanyLegalName          *string `json:"company_legal_name"`
	CompanyRegistrationNumber *string `json:"company_registration_number"`
	TaxID                     *string `json:"tax_id"`
	BusinessType              *string `json:"business_type"`
	IndustryCategory          *string `json:"industry_category"`
	YearEstablished           *int    `json:"year_established"`
	NumberOfEmployees         *string `json:"number_of_employees"`
	CompanyWebsite            *string `json:"company_website"`
	BusinessAddress           *string `json:"business_address"`
	BusinessCity              *string `json:"business_city"`
	BusinessState             *string `json:"business_state"`
	BusinessPostalCode        *string `json:"business_postal_code"`
	BusinessCountry           string  `json:"business_country"`
	BankName                  *string `json:"bank_name"`
	BankAccountTitle          *string `json:"bank_account_title"`
	BankAccountNumber         *string `json:"bank_account_number"`
	Logo                      *string `json:"logo"`
}

// POST /vendors — admin-created vendor with a login account up front.
func CreateVendor(c *gin.Context) {
	var input vendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing users.User
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	password := string(hashed)

	status := input.Status
	if status == "" {
		status = users.StatusPending
	}

	account := users.User{
		ID:       uuid.NewString(),
		Name:     input.CompanyName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: &password,
		UserType: users.TypeVendor,
		Status:   status,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor user"})
		return
	}

	country := input.BusinessCountry
	if country == "" {
		country = "Pakistan"
	}

	profile := vendors.VendorProfile{
		ID:                        uuid.NewString(),
		UserID:                    &account.ID,
		CompanyName:               input.CompanyName,
		CompanyLegalName:          input.CompanyLegalName,
		CompanyRegistrationNumber: input.CompanyRegistrationNumber,
		TaxID:                     input.TaxID,
		BusinessType:              input.BusinessType,
		IndustryCategory:          input.IndustryCategory,
		YearEstablished:           input.YearEstablished,
		NumberOfEmployees:         input.NumberOfEmployees,
		CompanyEmail:              input.Email,
		CompanyPhone:              input.Phone,
		CompanyWebsite:            input.CompanyWebsite,
		BusinessAddress:           input.BusinessAddress,
		BusinessCity:              input.BusinessCity,
		BusinessState:             input.BusinessState,
		BusinessPostalCode:        input.BusinessPostalCode,
		BusinessCountry:           country,
		BankName:                  input.BankName,
		BankAccountTitle:          input.BankAccountTitle,
		BankAccountNumber:         input.BankAccountNumber,
		Logo:                      input.Logo,
		VerificationStatus:        vendors.VerificationPending,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

// GET /vendors/:id
func GetVendor(c *gin.Context) {
	var profile vendors.VendorProfile
	if err := database.DB.Preload("User").First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type vendorPatch struct {
	CompanyName               *string  `json:"company_name"`
	CompanyLegalName          *string  `json:"company_legal_name"`
	CompanyRegistrationNumber *string  `json:"company_registration_number"`
	TaxID                     *string  `json:"tax_id"`
	BusinessType              *string  `json:"business_type"`
	IndustryCategory          *string  `json:"industry_category"`
	YearEstablished           *int     `json:"year_established"`
	NumberOfEmployees         *string  `json:"number_of_employees"`
	CompanyPhone              *string  `json:"company_phone"`
	CompanyWebsite            *string  `json:"company_website"`
	BusinessAddress           *string  `json:"business_address"`
	BusinessCity              *string  `json:"business_city"`
	BusinessState             *string  `json:"business_state"`
	BusinessPostalCode        *string  `json:"business_postal_code"`
	BusinessCountry           *string  `json:"business_country"`
	BankName                  *string  `json:"bank_name"`
	BankAccountTitle          *string  `json:"bank_account_title"`
	BankAccountNumber         *string  `json:"bank_account_number"`
	Logo                      *string  `json:"logo"`
	VerificationStatus        *string  `json:"verification_status"`
	IsActive                  *bool    `json:"is_active"`
	IsFeatured                *bool    `json:"is_featured"`
	Rating                    *float64 `json:"rating"`
}

// PUT /vendors/:id
func UpdateVendor(c *gin.Context) {
	var profile vendors.VendorProfile
	if err := database.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var patch vendorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyVendorPatch(&profile, patch)

	if err := database.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func applyVendorPatch(profile *vendors.VendorProfile, patch vendorPatch) {
	if patch.CompanyName != nil {
		profile.CompanyName = *patch.CompanyName
	}
	if patch.CompanyLegalName != nil {
		profile.CompanyLegalName = patch.CompanyLegalName
	}
	if patch.CompanyRegistrationNumber != nil {
		profile.CompanyRegistrationNumber = patch.CompanyRegistrationNumber
	}
	if patch.TaxID != nil {
		profile.TaxID = patch.TaxID
	}
	if patch.BusinessType != nil {
		profile.BusinessType = patch.BusinessType
	}
	if patch.IndustryCategory != nil {
		profile.IndustryCategory = patch.IndustryCategory
	}
	if patch.YearEstablished != nil {
		profile.YearEstablished = patch.YearEstablished
	}
	if patch.NumberOfEmployees != nil {
		profile.NumberOfEmployees = patch.NumberOfEmployees
	}
	if patch.CompanyPhone != nil {
		profile.CompanyPhone = patch.CompanyPhone
	}
	if patch.CompanyWebsite != nil {
		profile.CompanyWebsite = patch.CompanyWebsite
	}
	if patch.BusinessAddress != nil {
		profile.BusinessAddress = patch.BusinessAddress
	}
	if patch.BusinessCity != nil {
		profile.BusinessCity = patch.BusinessCity
	}
	if patch.BusinessState != nil {
		profile.BusinessState = patch.BusinessState
	}
	if patch.BusinessPostalCode != nil {
		profile.BusinessPostalCode = patch.BusinessPostalCode
	}
	if patch.BusinessCountry != nil {
		profile.BusinessCountry = *patch.BusinessCountry
	}
	if patch.BankName != nil {
		profile.BankName = patch.BankName
	}
	if patch.BankAccountTitle != nil {
		profile.BankAccountTitle = patch.BankAccountTitle
	}
	if patch.BankAccountNumber != nil {
		profile.BankAccountNumber = patch.BankAccountNumber
	}
	if patch.Logo != nil {
		profile.Logo = patch.Logo
	}
	if patch.VerificationStatus != nil {
		profile.VerificationStatus = *patch.VerificationStatus
	}
	if patch.IsActive != nil {
		profile.IsActive = *patch.IsActive
	}
	if patch.IsFeatured != nil {
		profile.IsFeatured = *patch.IsFeatured
	}
	if patch.Rating != nil {
		profile.Rating = *patch.Rating
	}
}

// DELETE /vendors/:id
func DeleteVendor(c *gin.Context) {
	var profile vendors.VendorProfile
	if err := database.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	if err := database.DB.Delete(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}

// POST /vendors/:id/activate
func ActivateVendor(c *gin.Context) {
	activator := vendors.Activator{
		Vendors:  store.GormVendorStore{DB: database.DB},
		Accounts: store.GormAccountStore{DB: database.DB},
		Notifier: mailer.SMTPNotifier{},
	}

	result, err := activator.Activate(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, vendors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		case errors.Is(err, vendors.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user with this email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate vendor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Vendor activated successfully",
		"user_id":         result.UserID,
		"account_created": result.AccountCreated,
		"email":           result.Email,
		"company_name":    result.CompanyName,
	})
}
