package contract

import (
	"context"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	Update(ctx context.Context, shop *entity.Shop) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllWithCompany returns shops joined with the owning company name,
	// for the admin list view.
	FindAllWithCompany(ctx context.Context, specs ...specification.Specification) ([]*entity.ShopListItem, error)

	// Customization (1:1 per shop)
	FindCustomization(ctx context.Context, shopId uuid.UUID) (*entity.Customization, error)
	SaveCustomization(ctx context.Context, customization *entity.Customization) error
}
