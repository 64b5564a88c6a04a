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

type CompanyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanyMapper
}

func NewCompanyRepository(db *gorm.DB) contract.CompanyRepository {
	return &CompanyRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompanyMapper(),
	}
}

func (r *CompanyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *entity.Company) error {
	modelCompany := r.mapper.ToModel(company)
	if err := r.db.WithContext(ctx).Create(modelCompany).Error; err != nil {
		return err
	}
	*company = *r.mapper.ToEntity(modelCompany)
	return nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *entity.Company) error {
	modelCompany := r.mapper.ToModel(company)
	if err := r.db.WithContext(ctx).Save(modelCompany).Error; err != nil {
		return err
	}
	*company = *r.mapper.ToEntity(modelCompany)
	return nil
}

func (r *CompanyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Company, error) {
	var modelCompany model.Company
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCompany).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelCompany), nil
}

func (r *CompanyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Company, error) {
	var modelCompanies []*model.Company
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelCompanies).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelCompanies), nil
}

func (r *CompanyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Company{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CompanyRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Company{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
