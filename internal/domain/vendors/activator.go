package vendors

import (
	"log"

	"github.com/google/uuid"

	"marketplace-admin/internal/domain/notify"
	"marketplace-admin/internal/domain/users"
)

// ActivationState of a vendor profile.
type ActivationState string

const (
	StateUnlinked       ActivationState = "unlinked"
	StateLinkedInactive ActivationState = "linked-inactive"
	StateLinkedActive   ActivationState = "linked-active"
)

func StateOf(v *VendorProfile) ActivationState {
	if v.UserID == nil || *v.UserID == "" {
		return StateUnlinked
	}
	if v.IsActive && v.VerificationStatus == VerificationVerified {
		return StateLinkedActive
	}
	return StateLinkedInactive
}

// VendorStore is the persistence the activator needs for profiles.
type VendorStore interface {
	Get(id string) (*VendorProfile, error)
	FindByUserID(userID string) (*VendorProfile, error)
	Update(v *VendorProfile) error
}

// AccountStore is the persistence the activator needs for login accounts.
// Get and FindByEmail return (nil, nil) when no account exists.
type AccountStore interface {
	Get(id string) (*users.User, error)
	FindByEmail(email string) (*users.User, error)
	Create(u *users.User) error
	Update(u *users.User) error
}

type ActivationResult struct {
	UserID         string `json:"user_id"`
	AccountCreated bool   `json:"account_created"`
	CompanyName    string `json:"company_name"`
	Email          string `json:"email"`
}

// Activator provisions a login identity for a vendor profile exactly once.
// The profile-to-account link is write-once: once UserID is set it is never
// pointed at a different account.
type Activator struct {
	Vendors  VendorStore
	Accounts AccountStore
	Notifier notify.Notifier
}

// Activate flips an already-linked vendor to active, or allocates one new
// account and links it. Calling it again on an activated vendor is a no-op
// yielding the same terminal state.
//
// A crash between account creation and linking leaves an orphan account. The
// retry detects it by the CreatedByActivation marker on an unlinked account
// with the vendor's email and adopts it instead of creating a second one.
func (a *Activator) Activate(vendorID string) (ActivationResult, error) {
	vendor, err := a.Vendors.Get(vendorID)
	if err != nil {
		return ActivationResult{}, err
	}

	if vendor.UserID != nil && *vendor.UserID != "" {
		return a.activateLinked(vendor)
	}

	account, err := a.Accounts.FindByEmail(vendor.CompanyEmail)
	if err != nil {
		return ActivationResult{}, err
	}
	if account != nil {
		if !a.isOwnOrphan(account) {
			// the email belongs to someone else; ownership cannot be verified
			// here, so this is a hard stop with no writes
			return ActivationResult{}, ErrConflict
		}
		return a.link(vendor, account, false)
	}

	account = &users.User{
		ID:                  uuid.NewString(),
		Name:                vendor.CompanyName,
		Email:               vendor.CompanyEmail,
		Phone:               vendor.CompanyPhone,
		Password:            nil, // OTP sign-in only
		UserType:            users.TypeVendor,
		Status:              users.StatusApproved,
		AuthProvider:        "otp",
		Address:             vendor.BusinessAddress,
		City:                vendor.BusinessCity,
		State:               vendor.BusinessState,
		PostalCode:          vendor.BusinessPostalCode,
		Country:             &vendor.BusinessCountry,
		CreatedByActivation: true,
	}
	if err := a.Accounts.Create(account); err != nil {
		return ActivationResult{}, err
	}

	return a.link(vendor, account, true)
}

func (a *Activator) activateLinked(vendor *VendorProfile) (ActivationResult, error) {
	account, err := a.Accounts.Get(*vendor.UserID)
	if err != nil {
		return ActivationResult{}, err
	}

	alreadyActive := StateOf(vendor) == StateLinkedActive

	if account != nil && account.Status != users.StatusApproved {
		account.Status = users.StatusApproved
		if err := a.Accounts.Update(account); err != nil {
			return ActivationResult{}, err
		}
	}
	if !alreadyActive {
		vendor.IsActive = true
		vendor.VerificationStatus = VerificationVerified
		if err := a.Vendors.Update(vendor); err != nil {
			return ActivationResult{}, err
		}
		a.notifyActivated(vendor)
	}

	return ActivationResult{
		UserID:      *vendor.UserID,
		CompanyName: vendor.CompanyName,
		Email:       vendor.CompanyEmail,
	}, nil
}

// isOwnOrphan reports whether the account is a leftover from a prior partial
// activation: allocated by activation, vendor-typed, and linked to no profile.
func (a *Activator) isOwnOrphan(account *users.User) bool {
	if !account.CreatedByActivation || account.UserType != users.TypeVendor {
		return false
	}
	linked, err := a.Vendors.FindByUserID(account.ID)
	if err != nil {
		return false
	}
	return linked == nil
}

func (a *Activator) link(vendor *VendorProfile, account *users.User, created bool) (ActivationResult, error) {
	if account.Status != users.StatusApproved {
		account.Status = users.StatusApproved
		if err := a.Accounts.Update(account); err != nil {
			return ActivationResult{}, err
		}
	}

	vendor.UserID = &account.ID
	vendor.IsActive = true
	vendor.VerificationStatus = VerificationVerified
	if err := a.Vendors.Update(vendor); err != nil {
		return ActivationResult{}, err
	}

	a.notifyActivated(vendor)

	return ActivationResult{
		UserID:         account.ID,
		AccountCreated: created,
		CompanyName:    vendor.CompanyName,
		Email:          vendor.CompanyEmail,
	}, nil
}

func (a *Activator) notifyActivated(vendor *VendorProfile) {
	if a.Notifier == nil {
		return
	}
	err := a.Notifier.Send(notify.KindVendorActivated, vendor.CompanyEmail, map[string]string{
		"company_name": vendor.CompanyName,
	})
	if err != nil {
		log.Println("vendor activation notification failed:", err)
	}
}
