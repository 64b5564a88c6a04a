package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VerificationListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,oneof=pending completed"`
	Result string `query:"result" validate:"omitempty,oneof=success failure"`
	Method string `query:"method" validate:"omitempty,oneof=bankid mojeid ocr facescan repeated qr"`
	ShopId string `query:"shop_id"`
}

type VerificationResponse struct {
	Id           uuid.UUID              `json:"id"`
	ShopId       uuid.UUID              `json:"shop_id"`
	ShopName     string                 `json:"shop_name,omitempty"`
	CompanyName  string                 `json:"company_name,omitempty"`
	SessionId    string                 `json:"session_id"`
	Method       string                 `json:"method"`
	Status       string                 `json:"status"`
	Result       string                 `json:"result"`
	Price        decimal.Decimal        `json:"price"`
	ErrorMessage *string                `json:"error_message"`
	Metadata     map[string]interface{} `json:"metadata"`
	CreatedAt    time.Time              `json:"created_at"`
	CompletedAt  *time.Time             `json:"completed_at"`
}

// CorrectVerificationRequest flips the stored result of a completed
// verification after a manual review.
type CorrectVerificationRequest struct {
	Result string `json:"result" validate:"required,oneof=success failure"`
	Note   string `json:"note" validate:"required"`
}
