package unitofwork

import (
	"context"

	"agegate-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AdminRepository() contract.AdminRepository
	CompanyRepository() contract.CompanyRepository
	ShopRepository() contract.ShopRepository
	VerificationRepository() contract.VerificationRepository
	WalletRepository() contract.WalletRepository
	ErrorRepository() contract.ErrorRepository
	SettingRepository() contract.SettingRepository
}
