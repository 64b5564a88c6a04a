package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=support admin super_admin"`
}

type AdminListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Role   string `query:"role"`
}

type ActionLogListRequest struct {
	Page    int    `query:"page"`
	Limit   int    `query:"limit"`
	AdminId string `query:"admin_id"`
}

type ActionLogResponse struct {
	Id         uuid.UUID              `json:"id"`
	AdminId    uuid.UUID              `json:"admin_id"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   *string                `json:"entity_id"`
	Details    map[string]interface{} `json:"details"`
	IpAddress  string                 `json:"ip_address"`
	UserAgent  string                 `json:"user_agent"`
	CreatedAt  time.Time              `json:"created_at"`
}

type LogListRequest struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
