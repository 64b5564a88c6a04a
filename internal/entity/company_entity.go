package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompanyStatus string

const (
	CompanyStatusPending  CompanyStatus = "pending"
	CompanyStatusApproved CompanyStatus = "approved"
	CompanyStatusRejected CompanyStatus = "rejected"
)

type Company struct {
	Id              uuid.UUID
	Name            string
	Ico             string
	Dic             string
	Email           string
	Phone           string
	Address         string
	ContactPerson   string
	Status          CompanyStatus
	UserId          *uuid.UUID
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
}

// CompanyDetail is a read projection: the company plus its derived balance.
type CompanyDetail struct {
	Company
	Balance decimal.Decimal
}

// CompanyVerificationStats is the top-companies ranking projection.
type CompanyVerificationStats struct {
	CompanyId         uuid.UUID
	CompanyName       string
	VerificationCount int64
	SuccessRate       float64
}
