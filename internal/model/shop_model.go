package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Shop struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(255);not null"`
	Url                 string         `gorm:"type:text;not null"`
	Sector              string         `gorm:"type:varchar(100)"`
	IntegrationType     string         `gorm:"type:varchar(50)"`
	PricingPlan         string         `gorm:"type:varchar(50)"`
	VerificationMethods datatypes.JSON `gorm:"type:jsonb"`
	Status              string         `gorm:"type:varchar(50);not null;default:'active';index"`
	ApiKey              string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt           time.Time      `gorm:"autoCreateTime;index"`
}

func (Shop) TableName() string {
	return "shops"
}

type Customization struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShopId              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	LogoUrl             *string        `gorm:"type:text"`
	PrimaryColor        string         `gorm:"type:varchar(20)"`
	SecondaryColor      string         `gorm:"type:varchar(20)"`
	Font                string         `gorm:"type:varchar(100)"`
	ButtonStyle         string         `gorm:"type:varchar(50)"`
	VerificationMethods datatypes.JSON `gorm:"type:jsonb"`
	FailureAction       string         `gorm:"type:varchar(50);not null;default:'block'"`
	FailureRedirect     *string        `gorm:"type:text"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (Customization) TableName() string {
	return "customizations"
}
