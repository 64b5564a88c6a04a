package entity

import (
	"time"

	"github.com/google/uuid"
)

// Setting categories and keys. The value of each (category, key) pair is
// an opaque structured document replaced wholesale on every write.
const (
	SettingCategoryPricing       = "pricing"
	SettingCategoryLimits        = "limits"
	SettingCategoryNotifications = "notifications"
	SettingCategoryServices      = "services"
	SettingCategoryBilling       = "billing"

	SettingKeyVerificationMethods = "verification_methods"
	SettingKeyApiRateLimits       = "api_rate_limits"
	SettingKeyEmailNotifications  = "email_notifications"
	SettingKeyCompanyDetails      = "company_details"
	SettingKeyInvoiceSettings     = "invoice_settings"
)

type SystemSetting struct {
	Id          uuid.UUID
	Category    string
	Key         string
	Description *string
	Value       map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SettingsAuditLog struct {
	Id        uuid.UUID
	SettingId *uuid.UUID
	UserId    *uuid.UUID
	Action    string
	OldValue  map[string]interface{}
	NewValue  map[string]interface{}
	CreatedAt time.Time
}
