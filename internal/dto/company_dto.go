package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompanyListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
}

type CompanyResponse struct {
	Id              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Ico             string     `json:"ico"`
	Dic             string     `json:"dic"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	ContactPerson   string     `json:"contact_person"`
	Status          string     `json:"status"`
	ApprovedBy      *uuid.UUID `json:"approved_by"`
	ApprovedAt      *time.Time `json:"approved_at"`
	RejectionReason *string    `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

type CompanyDetailResponse struct {
	CompanyResponse
	Balance decimal.Decimal `json:"wallet_balance"`
}

type UpdateCompanyRequest struct {
	Name          string `json:"name" validate:"omitempty,min=1"`
	Ico           string `json:"ico"`
	Dic           string `json:"dic"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person"`
}

type RejectCompanyRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CreditAdjustmentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=credit debit"`
	Description string          `json:"description" validate:"required"`
}
