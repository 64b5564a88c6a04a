package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SystemSetting struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category    string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_settings_category_key"`
	Key         string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_settings_category_key"`
	Description *string        `gorm:"type:text"`
	Value       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}

type SettingsAuditLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SettingId *uuid.UUID     `gorm:"type:uuid;index"`
	UserId    *uuid.UUID     `gorm:"type:uuid"`
	Action    string         `gorm:"type:varchar(50);not null"`
	OldValue  datatypes.JSON `gorm:"type:jsonb"`
	NewValue  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (SettingsAuditLog) TableName() string {
	return "settings_audit_log"
}
