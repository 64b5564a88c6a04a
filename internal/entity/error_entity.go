package entity

import (
	"time"

	"github.com/google/uuid"
)

type ErrorStatus string

const (
	ErrorStatusOpen          ErrorStatus = "open"
	ErrorStatusInvestigating ErrorStatus = "investigating"
	ErrorStatusResolved      ErrorStatus = "resolved"
)

// ErrorRecord is a system error reported by a shop integration or an
// internal service. Status moves open -> investigating -> resolved, but
// the progression is not enforced server-side: triage may jump states.
type ErrorRecord struct {
	Id             uuid.UUID
	ShopId         *uuid.UUID
	VerificationId *uuid.UUID
	Source         string
	ErrorType      string
	ErrorMessage   string
	ErrorDetails   map[string]interface{}
	Status         ErrorStatus
	ResolutionNote *string
	ResolvedBy     *uuid.UUID
	ResolvedAt     *time.Time
	CreatedAt      time.Time
}

// ErrorListItem joins the shop name for the errors table.
type ErrorListItem struct {
	ErrorRecord
	ShopName *string
}
