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
	"gorm.io/gorm/clause"
)

type SettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingMapper
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingMapper(),
	}
}

func (r *SettingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SettingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SystemSetting, error) {
	var modelSetting model.SystemSetting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSetting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSetting), nil
}

func (r *SettingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SystemSetting, error) {
	var modelSettings []*model.SystemSetting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSettings).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSettings), nil
}

// Save upserts on (category, key), replacing the stored value wholesale.
func (r *SettingRepositoryImpl) Save(ctx context.Context, setting *entity.SystemSetting) error {
	modelSetting := r.mapper.ToModel(setting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(modelSetting).Error
	if err != nil {
		return err
	}
	*setting = *r.mapper.ToEntity(modelSetting)
	return nil
}

func (r *SettingRepositoryImpl) CreateAudit(ctx context.Context, audit *entity.SettingsAuditLog) error {
	modelAudit := r.mapper.AuditToModel(audit)
	if err := r.db.WithContext(ctx).Create(modelAudit).Error; err != nil {
		return err
	}
	*audit = *r.mapper.AuditToEntity(modelAudit)
	return nil
}

func (r *SettingRepositoryImpl) FindAudits(ctx context.Context, specs ...specification.Specification) ([]*entity.SettingsAuditLog, error) {
	var modelAudits []*model.SettingsAuditLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAudits).Error; err != nil {
		return nil, err
	}

	return r.mapper.AuditsToEntities(modelAudits), nil
}
