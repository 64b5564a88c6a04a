package contract

import (
	"context"
	"time"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	Update(ctx context.Context, admin *entity.Admin) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// Auditing
	CreateActionLog(ctx context.Context, log *entity.AdminActionLog) error
	FindActionLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminActionLog, error)

	// Login attempt tracking
	CreateLoginAttempt(ctx context.Context, attempt *entity.AdminLoginAttempt) error
	CountFailedAttemptsSince(ctx context.Context, email string, since time.Time) (int64, error)
}
