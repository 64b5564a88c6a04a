package implementation

import (
	"context"
	"errors"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/mapper"
	"agegate-admin-be/internal/model"
	"agegate-admin-be/internal/repository/contract"
	"agegate-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ErrorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ErrorMapper
}

func NewErrorRepository(db *gorm.DB) contract.ErrorRepository {
	return &ErrorRepositoryImpl{
		db:     db,
		mapper: mapper.NewErrorMapper(),
	}
}

func (r *ErrorRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ErrorRepositoryImpl) Create(ctx context.Context, record *entity.ErrorRecord) error {
	modelRecord := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *ErrorRepositoryImpl) Update(ctx context.Context, record *entity.ErrorRecord) error {
	modelRecord := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Save(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(modelRecord)
	return nil
}

func (r *ErrorRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ErrorRecord, error) {
	var modelRecord model.ErrorRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelRecord), nil
}

func (r *ErrorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorRecord, error) {
	var modelRecords []*model.ErrorRecord
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRecords).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRecords), nil
}

func (r *ErrorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ErrorRecord{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type errorWithShopRow struct {
	model.ErrorRecord
	ShopName *string
}

// FindAllWithShop joins the shop name; shop_id may be null. Specs must
// qualify ambiguous columns (e.g. errors.created_at).
func (r *ErrorRepositoryImpl) FindAllWithShop(ctx context.Context, specs ...specification.Specification) ([]*entity.ErrorListItem, error) {
	var rows []*errorWithShopRow
	query := r.db.WithContext(ctx).Model(&model.ErrorRecord{}).
		Select("errors.*, shops.name AS shop_name").
		Joins("LEFT JOIN shops ON shops.id = errors.shop_id")
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.ErrorListItem, len(rows))
	for i, row := range rows {
		items[i] = &entity.ErrorListItem{
			ErrorRecord: *r.mapper.ToEntity(&row.ErrorRecord),
			ShopName:    row.ShopName,
		}
	}
	return items, nil
}
