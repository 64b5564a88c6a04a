package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Admin struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(50);not null;default:'support'"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Admin) TableName() string {
	return "admins"
}

type AdminActionLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Action     string         `gorm:"type:varchar(100);not null"`
	EntityType string         `gorm:"type:varchar(50);not null"`
	EntityId   *string        `gorm:"type:varchar(255)"`
	Details    datatypes.JSON `gorm:"type:jsonb"`
	IpAddress  string         `gorm:"type:varchar(45)"`
	UserAgent  string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
}

func (AdminActionLog) TableName() string {
	return "admin_actions_log"
}

type AdminLoginAttempt struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	IpAddress string    `gorm:"type:varchar(45)"`
	Success   bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (AdminLoginAttempt) TableName() string {
	return "admin_login_attempts"
}
