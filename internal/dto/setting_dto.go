package dto

import (
	"time"

	"github.com/google/uuid"
)

type SettingResponse struct {
	Id          uuid.UUID              `json:"id"`
	Category    string                 `json:"category"`
	Key         string                 `json:"key"`
	Description *string                `json:"description"`
	Value       map[string]interface{} `json:"value"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type SaveSettingRequest struct {
	Value map[string]interface{} `json:"value" validate:"required"`
}

type SettingsAuditListRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type SettingsAuditResponse struct {
	Id        uuid.UUID              `json:"id"`
	SettingId *uuid.UUID             `json:"setting_id"`
	UserId    *uuid.UUID             `json:"user_id"`
	Action    string                 `json:"action"`
	OldValue  map[string]interface{} `json:"old_value"`
	NewValue  map[string]interface{} `json:"new_value"`
	CreatedAt time.Time              `json:"created_at"`
}
