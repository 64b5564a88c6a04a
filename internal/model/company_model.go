package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Ico             string     `gorm:"type:varchar(20);not null"`
	Dic             string     `gorm:"type:varchar(20)"`
	Email           string     `gorm:"type:varchar(255);not null"`
	Phone           string     `gorm:"type:varchar(50)"`
	Address         string     `gorm:"type:text"`
	ContactPerson   string     `gorm:"type:varchar(255)"`
	Status          string     `gorm:"type:varchar(50);not null;default:'pending';index"`
	UserId          *uuid.UUID `gorm:"type:uuid;index"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
}

func (Company) TableName() string {
	return "companies"
}
