package main

import (
	"encoding/json"
	"log"
	"os"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/model"
	"agegate-admin-be/internal/service"
	"agegate-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedSuperAdmin(db)
	seedSettings(db)

	color.Green("Seeding completed!")
}

func seedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@agegate.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using the default password")
	}

	var existing model.Admin
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Super admin '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash password: %v", err)
	}
	hashStr := string(hash)

	admin := model.Admin{
		UserId:       uuid.New(),
		Name:         "Super Admin",
		Email:        email,
		PasswordHash: &hashStr,
		Role:         string(entity.AdminRoleSuperAdmin),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create super admin: %v", err)
	}

	color.Green("Created super admin: %s", email)
}

// seedSettings materializes the built-in defaults so operators see every
// known setting in the database, not just the overridden ones.
func seedSettings(db *gorm.DB) {
	pairs := []struct {
		Category string
		Key      string
	}{
		{entity.SettingCategoryPricing, entity.SettingKeyVerificationMethods},
		{entity.SettingCategoryLimits, entity.SettingKeyApiRateLimits},
		{entity.SettingCategoryNotifications, entity.SettingKeyEmailNotifications},
		{entity.SettingCategoryServices, "bankid"},
		{entity.SettingCategoryServices, "mojeid"},
		{entity.SettingCategoryServices, "ocr"},
		{entity.SettingCategoryServices, "facescan"},
		{entity.SettingCategoryBilling, entity.SettingKeyCompanyDetails},
		{entity.SettingCategoryBilling, entity.SettingKeyInvoiceSettings},
	}

	for _, p := range pairs {
		value := service.DefaultSettingValue(p.Category, p.Key)
		if value == nil {
			continue
		}

		var existing model.SystemSetting
		if err := db.Where("category = ? AND key = ?", p.Category, p.Key).First(&existing).Error; err == nil {
			color.Yellow("Setting %s/%s already exists, skipping...", p.Category, p.Key)
			continue
		}

		raw, err := json.Marshal(value)
		if err != nil {
			log.Printf("Error marshaling default for %s/%s: %v", p.Category, p.Key, err)
			continue
		}

		setting := model.SystemSetting{
			Category: p.Category,
			Key:      p.Key,
			Value:    raw,
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("Error creating setting %s/%s: %v", p.Category, p.Key, err)
			continue
		}
		color.Green("Created setting: %s/%s", p.Category, p.Key)
	}
}
