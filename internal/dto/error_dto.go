package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,oneof=open investigating resolved"`
	Source string `query:"source"`
}

type ErrorResponse struct {
	Id             uuid.UUID              `json:"id"`
	ShopId         *uuid.UUID             `json:"shop_id"`
	ShopName       *string                `json:"shop_name"`
	VerificationId *uuid.UUID             `json:"verification_id"`
	Source         string                 `json:"source"`
	ErrorType      string                 `json:"error_type"`
	ErrorMessage   string                 `json:"error_message"`
	ErrorDetails   map[string]interface{} `json:"error_details"`
	Status         string                 `json:"status"`
	ResolutionNote *string                `json:"resolution_note"`
	ResolvedBy     *uuid.UUID             `json:"resolved_by"`
	ResolvedAt     *time.Time             `json:"resolved_at"`
	CreatedAt      time.Time              `json:"created_at"`
}

type UpdateErrorStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=open investigating resolved"`
	ResolutionNote string `json:"resolution_note" validate:"required_if=Status resolved"`
}

// IngestErrorRequest is the payload shops post with their API key.
type IngestErrorRequest struct {
	VerificationId *uuid.UUID             `json:"verification_id"`
	Source         string                 `json:"source" validate:"required"`
	ErrorType      string                 `json:"error_type" validate:"required"`
	ErrorMessage   string                 `json:"error_message" validate:"required"`
	ErrorDetails   map[string]interface{} `json:"error_details"`
}
