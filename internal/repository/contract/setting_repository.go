package contract

import (
	"context"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"
)

type SettingRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemSetting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemSetting, error)

	// Save upserts on the (category, key) pair, replacing the whole value.
	Save(ctx context.Context, setting *entity.SystemSetting) error

	CreateAudit(ctx context.Context, audit *entity.SettingsAuditLog) error
	FindAudits(ctx context.Context, specs ...specification.Specification) ([]*entity.SettingsAuditLog, error)
}
