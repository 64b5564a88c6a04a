package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VerificationStatus string
type VerificationResult string

const (
	VerificationStatusPending   VerificationStatus = "pending"
	VerificationStatusCompleted VerificationStatus = "completed"

	VerificationResultSuccess VerificationResult = "success"
	VerificationResultFailure VerificationResult = "failure"
)

type Verification struct {
	Id           uuid.UUID
	ShopId       uuid.UUID
	SessionId    string
	Method       string
	Status       VerificationStatus
	Result       VerificationResult
	Price        decimal.Decimal
	ErrorMessage *string
	Metadata     map[string]interface{}
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// VerificationListItem joins the shop (and owning company) names for list views.
type VerificationListItem struct {
	Verification
	ShopName    string
	CompanyName string
}

// DailyVerificationCount is one point of the 30-day overview series.
type DailyVerificationCount struct {
	Date  string
	Count int64
}
