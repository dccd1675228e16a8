package database

import (
	"fmt"
	"log"
	"os"

	"marketplace-admin/internal/domain/plans"
	"marketplace-admin/internal/domain/subscriptions"
	"marketplace-admin/internal/domain/users"
	"marketplace-admin/internal/domain/vendors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.LoginToken{},

		// catalog
		&plans.Plan{},

		// entitlements
		&subscriptions.UserSubscription{},

		// vendors
		&vendors.VendorProfile{},
		&vendors.Banner{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
