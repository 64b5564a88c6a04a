package main

import (
	"log"
	"os"

	"agegate-admin-be/internal/model"
	"agegate-admin-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
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

	log.Println("Starting GORM Migration...")

	// 2. Extensions GORM AutoMigrate does not handle
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 3. AutoMigrate All Models
	models := []interface{}{
		&model.Admin{},
		&model.AdminActionLog{},
		&model.AdminLoginAttempt{},
		&model.Company{},
		&model.Shop{},
		&model.Customization{},
		&model.Verification{},
		&model.WalletTransaction{},
		&model.ErrorRecord{},
		&model.SystemSetting{},
		&model.SettingsAuditLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Supporting indexes for the hot list queries
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_verifications_created_at ON verifications (created_at DESC);`,
		`CREATE INDEX IF NOT EXISTS idx_wallet_transactions_company ON wallet_transactions (company_id, status);`,
		`CREATE INDEX IF NOT EXISTS idx_errors_status ON errors (status);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
