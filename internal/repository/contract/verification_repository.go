package contract

import (
	"context"
	"time"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"
)

type VerificationRepository interface {
	Create(ctx context.Context, verification *entity.Verification) error
	Update(ctx context.Context, verification *entity.Verification) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Verification, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Verification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllWithShop joins the shop and owning company names.
	FindAllWithShop(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationListItem, error)

	// Aggregations for the dashboard
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountCompletedBetween(ctx context.Context, from, to time.Time) (total, succeeded int64, err error)
	DailyCounts(ctx context.Context, from time.Time) ([]*entity.DailyVerificationCount, error)
	TopCompanies(ctx context.Context, from time.Time, limit int) ([]*entity.CompanyVerificationStats, error)
}
