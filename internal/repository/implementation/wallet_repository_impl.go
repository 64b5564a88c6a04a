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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WalletMapper
}

func NewWalletRepository(db *gorm.DB) contract.WalletRepository {
	return &WalletRepositoryImpl{
		db:     db,
		mapper: mapper.NewWalletMapper(),
	}
}

func (r *WalletRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WalletRepositoryImpl) Create(ctx context.Context, tx *entity.WalletTransaction) error {
	modelTx := r.mapper.ToModel(tx)
	if err := r.db.WithContext(ctx).Create(modelTx).Error; err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(modelTx)
	return nil
}

func (r *WalletRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WalletTransaction, error) {
	var modelTx model.WalletTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelTx), nil
}

func (r *WalletRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletTransaction, error) {
	var modelTxs []*model.WalletTransaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTxs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelTxs), nil
}

func (r *WalletRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WalletTransaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type transactionWithCompanyRow struct {
	model.WalletTransaction
	CompanyName string
}

// FindAllWithCompany joins the company name. Specs must qualify ambiguous
// columns (e.g. wallet_transactions.created_at).
func (r *WalletRepositoryImpl) FindAllWithCompany(ctx context.Context, specs ...specification.Specification) ([]*entity.TransactionListItem, error) {
	var rows []*transactionWithCompanyRow
	query := r.db.WithContext(ctx).Model(&model.WalletTransaction{}).
		Select("wallet_transactions.*, companies.name AS company_name").
		Joins("LEFT JOIN companies ON companies.id = wallet_transactions.company_id")
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.TransactionListItem, len(rows))
	for i, row := range rows {
		items[i] = &entity.TransactionListItem{
			WalletTransaction: *r.mapper.ToEntity(&row.WalletTransaction),
			CompanyName:       row.CompanyName,
		}
	}
	return items, nil
}

func (r *WalletRepositoryImpl) BalanceFor(ctx context.Context, companyId uuid.UUID) (decimal.Decimal, error) {
	type row struct {
		Balance decimal.Decimal
	}
	var res row
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(CASE WHEN type = 'credit' THEN amount ELSE -amount END), 0) AS balance
		FROM wallet_transactions
		WHERE company_id = ? AND status = 'completed'`,
		companyId).Scan(&res).Error
	if err != nil {
		return decimal.Zero, err
	}
	return res.Balance, nil
}
