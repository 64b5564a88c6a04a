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

type VerificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VerificationMapper
}

func NewVerificationRepository(db *gorm.DB) contract.VerificationRepository {
	return &VerificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewVerificationMapper(),
	}
}

func (r *VerificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VerificationRepositoryImpl) Create(ctx context.Context, verification *entity.Verification) error {
	modelVerification := r.mapper.ToModel(verification)
	if err := r.db.WithContext(ctx).Create(modelVerification).Error; err != nil {
		return err
	}
	*verification = *r.mapper.ToEntity(modelVerification)
	return nil
}

func (r *VerificationRepositoryImpl) Update(ctx context.Context, verification *entity.Verification) error {
	modelVerification := r.mapper.ToModel(verification)
	if err := r.db.WithContext(ctx).Save(modelVerification).Error; err != nil {
		return err
	}
	*verification = *r.mapper.ToEntity(modelVerification)
	return nil
}

func (r *VerificationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Verification, error) {
	var modelVerification model.Verification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelVerification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelVerification), nil
}

func (r *VerificationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Verification, error) {
	var modelVerifications []*model.Verification
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelVerifications).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelVerifications), nil
}

func (r *VerificationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Verification{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type verificationWithShopRow struct {
	model.Verification
	ShopName    string
	CompanyName string
}

// FindAllWithShop joins shop and company names. Specs must qualify
// ambiguous columns (e.g. verifications.created_at).
func (r *VerificationRepositoryImpl) FindAllWithShop(ctx context.Context, specs ...specification.Specification) ([]*entity.VerificationListItem, error) {
	var rows []*verificationWithShopRow
	query := r.db.WithContext(ctx).Model(&model.Verification{}).
		Select("verifications.*, shops.name AS shop_name, companies.name AS company_name").
		Joins("LEFT JOIN shops ON shops.id = verifications.shop_id").
		Joins("LEFT JOIN companies ON companies.id = shops.company_id")
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.VerificationListItem, len(rows))
	for i, row := range rows {
		items[i] = &entity.VerificationListItem{
			Verification: *r.mapper.ToEntity(&row.Verification),
			ShopName:     row.ShopName,
			CompanyName:  row.CompanyName,
		}
	}
	return items, nil
}

func (r *VerificationRepositoryImpl) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Verification{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VerificationRepositoryImpl) CountCompletedBetween(ctx context.Context, from, to time.Time) (int64, int64, error) {
	type row struct {
		Total     int64
		Succeeded int64
	}
	var res row
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(CASE WHEN result = 'success' THEN 1 ELSE 0 END), 0) AS succeeded
		FROM verifications
		WHERE status = 'completed' AND created_at >= ? AND created_at < ?`,
		from, to).Scan(&res).Error
	if err != nil {
		return 0, 0, err
	}
	return res.Total, res.Succeeded, nil
}

func (r *VerificationRepositoryImpl) DailyCounts(ctx context.Context, from time.Time) ([]*entity.DailyVerificationCount, error) {
	type row struct {
		Date  string
		Count int64
	}
	var rows []*row
	err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(created_at::date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
		FROM verifications
		WHERE created_at >= ?
		GROUP BY created_at::date
		ORDER BY created_at::date`,
		from).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]*entity.DailyVerificationCount, len(rows))
	for i, r := range rows {
		counts[i] = &entity.DailyVerificationCount{Date: r.Date, Count: r.Count}
	}
	return counts, nil
}

func (r *VerificationRepositoryImpl) TopCompanies(ctx context.Context, from time.Time, limit int) ([]*entity.CompanyVerificationStats, error) {
	type row struct {
		CompanyId         uuid.UUID
		CompanyName       string
		VerificationCount int64
		SuccessRate       float64
	}
	var rows []*row
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id AS company_id,
		       c.name AS company_name,
		       COUNT(v.id) AS verification_count,
		       COALESCE(ROUND(100.0 * SUM(CASE WHEN v.result = 'success' THEN 1 ELSE 0 END) / NULLIF(COUNT(v.id), 0), 1), 0) AS success_rate
		FROM verifications v
		JOIN shops s ON s.id = v.shop_id
		JOIN companies c ON c.id = s.company_id
		WHERE v.created_at >= ?
		GROUP BY c.id, c.name
		ORDER BY verification_count DESC
		LIMIT ?`,
		from, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]*entity.CompanyVerificationStats, len(rows))
	for i, r := range rows {
		stats[i] = &entity.CompanyVerificationStats{
			CompanyId:         r.CompanyId,
			CompanyName:       r.CompanyName,
			VerificationCount: r.VerificationCount,
			SuccessRate:       r.SuccessRate,
		}
	}
	return stats, nil
}
