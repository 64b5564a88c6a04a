package contract

import (
	"context"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"
)

type ErrorRepository interface {
	Create(ctx context.Context, record *entity.ErrorRecord) error
	Update(ctx context.Context, record *entity.ErrorRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ErrorRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllWithShop joins the shop name (nullable) for the errors table.
	FindAllWithShop(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorListItem, error)
}
