package contract

import (
	"context"

	"agegate-admin-be/internal/entity"
	"agegate-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletRepository interface {
	Create(ctx context.Context, tx *entity.WalletTransaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WalletTransaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WalletTransaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllWithCompany joins the company name for the transactions view.
	FindAllWithCompany(ctx context.Context, specs ...specification.Specification) ([]*entity.TransactionListItem, error)

	// BalanceFor sums completed transactions for one company, credits
	// positive, debits negative.
	BalanceFor(ctx context.Context, companyId uuid.UUID) (decimal.Decimal, error)
}
