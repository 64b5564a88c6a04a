package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ErrorRecord struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopId         *uuid.UUID     `gorm:"type:uuid;index"`
	VerificationId *uuid.UUID     `gorm:"type:uuid;index"`
	Source         string         `gorm:"type:varchar(100);not null"`
	ErrorType      string         `gorm:"type:varchar(100);not null"`
	ErrorMessage   string         `gorm:"type:text;not null"`
	ErrorDetails   datatypes.JSON `gorm:"type:jsonb"`
	Status         string         `gorm:"type:varchar(50);not null;default:'open';index"`
	ResolutionNote *string        `gorm:"type:text"`
	ResolvedBy     *uuid.UUID     `gorm:"type:uuid"`
	ResolvedAt     *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (ErrorRecord) TableName() string {
	return "errors"
}
