package implementation

import (
	"context"
	"errors"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/mapper"
	"agegate-admin-be/internal/model"
	"agegate-admin-be/internal/repository/contract"
	"agegate-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShopRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShopMapper
}

func NewShopRepository(db *gorm.DB) contract.ShopRepository {
	return &ShopRepositoryImpl{
		db:     db,
		mapper: mapper.NewShopMapper(),
	}
}

func (r *ShopRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShopRepositoryImpl) Create(ctx context.Context, shop *entity.Shop) error {
	modelShop := r.mapper.ToModel(shop)
	if err := r.db.WithContext(ctx).Create(modelShop).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(modelShop)
	return nil
}

func (r *ShopRepositoryImpl) Update(ctx context.Context, shop *entity.Shop) error {
	modelShop := r.mapper.ToModel(shop)
	if err := r.db.WithContext(ctx).Save(modelShop).Error; err != nil {
		return err
	}
	*shop = *r.mapper.ToEntity(modelShop)
	return nil
}

func (r *ShopRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Shop, error) {
	var modelShop model.Shop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelShop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelShop), nil
}

func (r *ShopRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Shop, error) {
	var modelShops []*model.Shop
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelShops).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelShops), nil
}

func (r *ShopRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Shop{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type shopWithCompanyRow struct {
	model.Shop
	CompanyName string
}

// FindAllWithCompany left-joins the owning company. Specs must qualify
// ambiguous columns (e.g. shops.created_at).
func (r *ShopRepositoryImpl) FindAllWithCompany(ctx context.Context, specs ...specification.Specification) ([]*entity.ShopListItem, error) {
	var rows []*shopWithCompanyRow
	query := r.db.WithContext(ctx).Model(&model.Shop{}).
		Select("shops.*, companies.name AS company_name").
		Joins("LEFT JOIN companies ON companies.id = shops.company_id")
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.ShopListItem, len(rows))
	for i, row := range rows {
		items[i] = &entity.ShopListItem{
			Shop:        *r.mapper.ToEntity(&row.Shop),
			CompanyName: row.CompanyName,
		}
	}
	return items, nil
}

func (r *ShopRepositoryImpl) FindCustomization(ctx context.Context, shopId uuid.UUID) (*entity.Customization, error) {
	var modelCustomization model.Customization
	err := r.db.WithContext(ctx).Where("shop_id = ?", shopId).First(&modelCustomization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CustomizationToEntity(&modelCustomization), nil
}

// SaveCustomization upserts on shop_id so a shop keeps exactly one record.
func (r *ShopRepositoryImpl) SaveCustomization(ctx context.Context, customization *entity.Customization) error {
	modelCustomization := r.mapper.CustomizationToModel(customization)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "shop_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"logo_url", "primary_color", "secondary_color", "font",
			"button_style", "verification_methods", "failure_action",
			"failure_redirect", "updated_at",
		}),
	}).Create(modelCustomization).Error
	if err != nil {
		return err
	}
	*customization = *r.mapper.CustomizationToEntity(modelCustomization)
	return nil
}
