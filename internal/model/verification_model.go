package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Verification struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	SessionId    string          `gorm:"type:varchar(255);not null;index"`
	Method       string          `gorm:"type:varchar(50);not null"`
	Status       string          `gorm:"type:varchar(50);not null;default:'pending';index"`
	Result       string          `gorm:"type:varchar(50)"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ErrorMessage *string         `gorm:"type:text"`
	Metadata     datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt    time.Time       `gorm:"autoCreateTime;index"`
	CompletedAt  *time.Time
}

func (Verification) TableName() string {
	return "verifications"
}
