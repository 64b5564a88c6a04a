package implementation

import (
	"context"
	"errors"
	"time"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/mapper"
	"agegate-admin-be/internal/model"
	"agegate-admin-be/internal/repository/contract"
	"agegate-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdminMapper
}

func NewAdminRepository(db *gorm.DB) contract.AdminRepository {
	return &AdminRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdminMapper(),
	}
}

func (r *AdminRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *entity.Admin) error {
	modelAdmin := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Create(modelAdmin).Error; err != nil {
		return err
	}
	*admin = *r.mapper.ToEntity(modelAdmin)
	return nil
}

func (r *AdminRepositoryImpl) Update(ctx context.Context, admin *entity.Admin) error {
	modelAdmin := r.mapper.ToModel(admin)
	if err := r.db.WithContext(ctx).Save(modelAdmin).Error; err != nil {
		return err
	}
	*admin = *r.mapper.ToEntity(modelAdmin)
	return nil
}

func (r *AdminRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error) {
	var modelAdmin model.Admin
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelAdmin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelAdmin), nil
}

func (r *AdminRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error) {
	var modelAdmins []*model.Admin
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAdmins).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAdmins), nil
}

func (r *AdminRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Admin{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdminRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (r *AdminRepositoryImpl) CreateActionLog(ctx context.Context, log *entity.AdminActionLog) error {
	modelLog := r.mapper.ActionLogToModel(log)
	if err := r.db.WithContext(ctx).Create(modelLog).Error; err != nil {
		return err
	}
	*log = *r.mapper.ActionLogToEntity(modelLog)
	return nil
}

func (r *AdminRepositoryImpl) FindActionLogs(ctx context.Context, specs ...specification.Specification) ([]*entity.AdminActionLog, error) {
	var modelLogs []*model.AdminActionLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelLogs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ActionLogsToEntities(modelLogs), nil
}

func (r *AdminRepositoryImpl) CreateLoginAttempt(ctx context.Context, attempt *entity.AdminLoginAttempt) error {
	modelAttempt := r.mapper.LoginAttemptToModel(attempt)
	if err := r.db.WithContext(ctx).Create(modelAttempt).Error; err != nil {
		return err
	}
	*attempt = *r.mapper.LoginAttemptToEntity(modelAttempt)
	return nil
}

func (r *AdminRepositoryImpl) CountFailedAttemptsSince(ctx context.Context, email string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AdminLoginAttempt{}).
		Where("email = ? AND success = ? AND created_at >= ?", email, false, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
