package store

import (
	"errors"

	"gorm.io/gorm"

	"marketplace-admin/internal/domain/users"
	"marketplace-admin/internal/domain/vendors"
)

// GormVendorStore satisfies vendors.VendorStore over the shared gorm handle.
type GormVendorStore struct {
	DB *gorm.DB
}

func (s GormVendorStore) Get(id string) (*vendors.VendorProfile, error) {
	var v vendors.VendorProfile
	if err := s.DB.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, vendors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s GormVendorStore) FindByUserID(userID string) (*vendors.VendorProfile, error) {
	var v vendors.VendorProfile
	if err := s.DB.First(&v, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (s GormVendorStore) Update(v *vendors.VendorProfile) error {
	return s.DB.Save(v).Error
}

// GormAccountStore satisfies vendors.AccountStore.
type GormAccountStore struct {
	DB *gorm.DB
}

func (s GormAccountStore) Get(id string) (*users.User, error) {
	var u users.User
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s GormAccountStore) FindByEmail(email string) (*users.User, error) {
	var u users.User
	if err := s.DB.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s GormAccountStore) Create(u *users.User) error {
	return s.DB.Create(u).Error
}

func (s GormAccountStore) Update(u *users.User) error {
	return s.DB.Save(u).Error
}
