package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionListRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Search    string `query:"search"`
	Type      string `query:"type" validate:"omitempty,oneof=credit debit"`
	Status    string `query:"status" validate:"omitempty,oneof=pending completed failed"`
	CompanyId string `query:"company_id"`
	DateFrom  string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo    string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
}

type TransactionResponse struct {
	Id            uuid.UUID       `json:"id"`
	CompanyId     uuid.UUID       `json:"company_id"`
	CompanyName   string          `json:"company_name,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Description   string          `json:"description"`
	InvoiceNumber *string         `json:"invoice_number"`
	CreatedAt     time.Time       `json:"created_at"`
}
